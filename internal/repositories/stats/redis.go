package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danblock97/astrostats/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	statsKeyPrefix  = "squib:stats:"
	guildWinsPrefix = "squib:wins:"

	defaultLeaderboardLimit = 10
)

// ErrStatsNotFound is returned when a user has no stats record yet
var ErrStatsNotFound = errors.New("stats record not found")

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func statsKey(guildID, userID string) string {
	return fmt.Sprintf("%s%s:%s", statsKeyPrefix, guildID, userID)
}

// RecordResult upserts the stats record and keeps the per-guild wins
// sorted set in step for leaderboard reads.
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error) {
	if input == nil || input.UserID == "" || input.GuildID == "" {
		return nil, errors.New("input, user ID and guild ID cannot be empty")
	}

	record, err := r.GetStats(ctx, &GetStatsInput{
		UserID:  input.UserID,
		GuildID: input.GuildID,
	})
	if err != nil {
		if !errors.Is(err, ErrStatsNotFound) {
			return nil, err
		}
		record = &models.PlayerStats{
			UserID:  input.UserID,
			GuildID: input.GuildID,
		}
	}

	record.Wins += input.WinIncrement
	record.GamesPlayed++
	record.UpdatedAt = time.Now().UTC()
	if input.Username != "" {
		record.Username = input.Username
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stats: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, statsKey(input.GuildID, input.UserID), payload, 0)
	pipe.ZIncrBy(ctx, guildWinsPrefix+input.GuildID, float64(input.WinIncrement), input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	return &RecordResultOutput{
		Wins:        record.Wins,
		GamesPlayed: record.GamesPlayed,
	}, nil
}

// GetStats retrieves a user's stats record from Redis
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.UserID == "" || input.GuildID == "" {
		return nil, errors.New("input, user ID and guild ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, statsKey(input.GuildID, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	var record models.PlayerStats
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return &record, nil
}

// GetLeaderboard retrieves the guild's top players by win count
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	userIDs, err := r.client.ZRevRange(ctx, guildWinsPrefix+input.GuildID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]*models.PlayerStats, 0, len(userIDs))
	for _, userID := range userIDs {
		record, err := r.GetStats(ctx, &GetStatsInput{
			UserID:  userID,
			GuildID: input.GuildID,
		})
		if err != nil {
			if errors.Is(err, ErrStatsNotFound) {
				// Sorted-set member without a record; skip it
				continue
			}
			return nil, err
		}
		entries = append(entries, record)
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}
