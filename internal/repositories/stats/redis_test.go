package stats

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      *redisRepository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.miniRedis.Close()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestRecordResult_NewPlayer() {
	output, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		UserID:       "user-1",
		GuildID:      "guild-1",
		Username:     "Player One",
		WinIncrement: 1,
	})
	s.Require().NoError(err)
	s.Equal(1, output.Wins)
	s.Equal(1, output.GamesPlayed)

	record, err := s.repo.GetStats(s.ctx, &GetStatsInput{UserID: "user-1", GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("Player One", record.Username)
	s.Equal(1, record.Wins)
	s.False(record.UpdatedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestRecordResult_Accumulates() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
			UserID:       "user-1",
			GuildID:      "guild-1",
			WinIncrement: 1,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		UserID:       "user-1",
		GuildID:      "guild-1",
		WinIncrement: 0,
	})
	s.Require().NoError(err)
	s.Equal(3, output.Wins)
	s.Equal(4, output.GamesPlayed)
}

func (s *RedisRepositoryTestSuite) TestRecordResult_GuildsIsolated() {
	_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
		UserID: "user-1", GuildID: "guild-1", WinIncrement: 1,
	})
	s.Require().NoError(err)

	_, err = s.repo.GetStats(s.ctx, &GetStatsInput{UserID: "user-1", GuildID: "guild-2"})
	s.ErrorIs(err, ErrStatsNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetStats_NotFound() {
	_, err := s.repo.GetStats(s.ctx, &GetStatsInput{UserID: "nobody", GuildID: "guild-1"})
	s.ErrorIs(err, ErrStatsNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboard_RanksByWins() {
	wins := map[string]int{"user-1": 1, "user-2": 3, "user-3": 2}
	for userID, count := range wins {
		for i := 0; i < count; i++ {
			_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
				UserID:       userID,
				GuildID:      "guild-1",
				Username:     userID,
				WinIncrement: 1,
			})
			s.Require().NoError(err)
		}
	}

	output, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)
	s.Equal("user-2", output.Entries[0].UserID)
	s.Equal("user-3", output.Entries[1].UserID)
	s.Equal("user-1", output.Entries[2].UserID)
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboard_LimitApplied() {
	for _, userID := range []string{"a", "b", "c"} {
		_, err := s.repo.RecordResult(s.ctx, &RecordResultInput{
			UserID: userID, GuildID: "guild-1", WinIncrement: 1,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{GuildID: "guild-1", Limit: 2})
	s.Require().NoError(err)
	s.Len(output.Entries, 2)
}
