package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/danblock97/astrostats/internal/models"
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

func (s *RedisRepositoryTestSuite) newWaitingSession(id, guildID string) *models.Session {
	return &models.Session{
		ID:         id,
		GuildID:    guildID,
		HostUserID: "host-1",
		ChannelID:  "channel-1",
		State:      models.SessionStateWaiting,
		Participants: []*models.Participant{
			{UserID: "host-1", Username: "Host", Status: models.ParticipantStatusAlive},
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	sess := s.newWaitingSession("sess-1", "guild-1")

	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess})
	s.Require().NoError(err)

	fetched, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal("guild-1", fetched.GuildID)
	s.Equal(models.SessionStateWaiting, fetched.State)
	s.Len(fetched.Participants, 1)
	s.True(fetched.CreatedAt.Equal(sess.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestCreateSession_SecondActiveRejected() {
	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: s.newWaitingSession("sess-1", "guild-1"),
	})
	s.Require().NoError(err)

	err = s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: s.newWaitingSession("sess-2", "guild-1"),
	})
	s.ErrorIs(err, ErrActiveSessionExists)

	// A different guild is unaffected
	err = s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: s.newWaitingSession("sess-3", "guild-2"),
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetActiveSession() {
	sess := s.newWaitingSession("sess-1", "guild-1")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess}))

	active, err := s.repo.GetActiveSession(s.ctx, &GetActiveSessionInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("sess-1", active.ID)

	_, err = s.repo.GetActiveSession(s.ctx, &GetActiveSessionInput{GuildID: "guild-2"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSession_CompletionFreesGuild() {
	sess := s.newWaitingSession("sess-1", "guild-1")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess}))

	sess.State = models.SessionStateCompleted
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	// Guild pointer is cleared, a new session may start
	_, err := s.repo.GetActiveSession(s.ctx, &GetActiveSessionInput{GuildID: "guild-1"})
	s.ErrorIs(err, ErrSessionNotFound)

	err = s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: s.newWaitingSession("sess-2", "guild-1"),
	})
	s.NoError(err)

	// The completed document itself is still readable
	fetched, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal(models.SessionStateCompleted, fetched.State)
}

func (s *RedisRepositoryTestSuite) TestSaveSession_RoundProgress() {
	sess := s.newWaitingSession("sess-1", "guild-1")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess}))

	sess.State = models.SessionStateInProgress
	sess.CurrentRound = 4
	sess.Participants[0].Status = models.ParticipantStatusEliminated
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	fetched, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal(4, fetched.CurrentRound)
	s.Equal(models.ParticipantStatusEliminated, fetched.Participants[0].Status)
}

func (s *RedisRepositoryTestSuite) TestGetActiveSessions() {
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: s.newWaitingSession("sess-1", "guild-1"),
	}))
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: s.newWaitingSession("sess-2", "guild-2"),
	}))

	// Complete one of them; it should drop out of the index
	done := s.newWaitingSession("sess-2", "guild-2")
	done.State = models.SessionStateCompleted
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: done}))

	output, err := s.repo.GetActiveSessions(s.ctx, &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 1)
	s.Equal("sess-1", output.Sessions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestAppendParticipant() {
	sess := s.newWaitingSession("sess-1", "guild-1")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess}))

	updated, err := s.repo.AppendParticipant(s.ctx, &AppendParticipantInput{
		SessionID: "sess-1",
		Participant: &models.Participant{
			UserID:   "user-2",
			Username: "Player Two",
			Status:   models.ParticipantStatusAlive,
		},
	})
	s.Require().NoError(err)
	s.Len(updated.Participants, 2)
	s.Equal("user-2", updated.Participants[1].UserID)
}

func (s *RedisRepositoryTestSuite) TestAppendParticipant_Duplicate() {
	sess := s.newWaitingSession("sess-1", "guild-1")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess}))

	_, err := s.repo.AppendParticipant(s.ctx, &AppendParticipantInput{
		SessionID:   "sess-1",
		Participant: &models.Participant{UserID: "host-1", Status: models.ParticipantStatusAlive},
	})
	s.ErrorIs(err, ErrAlreadyJoined)
}

func (s *RedisRepositoryTestSuite) TestAppendParticipant_NotJoinable() {
	sess := s.newWaitingSession("sess-1", "guild-1")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess}))

	sess.State = models.SessionStateInProgress
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	_, err := s.repo.AppendParticipant(s.ctx, &AppendParticipantInput{
		SessionID:   "sess-1",
		Participant: &models.Participant{UserID: "user-2", Status: models.ParticipantStatusAlive},
	})
	s.ErrorIs(err, ErrSessionNotJoinable)
}

func (s *RedisRepositoryTestSuite) TestAppendParticipant_NotFound() {
	_, err := s.repo.AppendParticipant(s.ctx, &AppendParticipantInput{
		SessionID:   "missing",
		Participant: &models.Participant{UserID: "user-2", Status: models.ParticipantStatusAlive},
	})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetSessionMessage() {
	sess := s.newWaitingSession("sess-1", "guild-1")
	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: sess}))

	err := s.repo.SetSessionMessage(s.ctx, &SetSessionMessageInput{
		SessionID: "sess-1",
		MessageID: "msg-42",
	})
	s.Require().NoError(err)

	fetched, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal("msg-42", fetched.MessageID)
}
