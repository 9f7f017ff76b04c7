package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danblock97/astrostats/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "squib:session:"
	guildActivePrefix = "squib:active:"
	activeSessionsKey = "squib:active_sessions"

	// Optimistic-transaction retries for concurrent joins
	maxAppendRetries = 5
)

var (
	// ErrSessionNotFound is returned when a session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrActiveSessionExists is returned when a guild already has a
	// non-terminal session
	ErrActiveSessionExists = errors.New("guild already has an active session")

	// ErrSessionNotJoinable is returned when a join targets a session
	// that is no longer waiting for players
	ErrSessionNotJoinable = errors.New("session is no longer joinable")

	// ErrAlreadyJoined is returned when the user is already a participant
	ErrAlreadyJoined = errors.New("user already joined this session")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// CreateSession inserts a new waiting session. The per-guild
// "one active session" invariant is enforced here with SETNX on the
// guild pointer, so concurrent starts cannot both succeed.
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	if sess.ID == "" || sess.GuildID == "" {
		return errors.New("session ID and guild ID cannot be empty")
	}

	guildKey := guildActivePrefix + sess.GuildID
	ok, err := r.client.SetNX(ctx, guildKey, sess.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim guild session slot: %w", err)
	}
	if !ok {
		return ErrActiveSessionExists
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+sess.ID, payload, 0)
	pipe.SAdd(ctx, activeSessionsKey, sess.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		// Release the slot so the guild is not stuck without a session
		r.client.Del(ctx, guildKey)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// GetActiveSession retrieves the guild's non-terminal session
func (r *redisRepository) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*models.Session, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guildKey := guildActivePrefix + input.GuildID
	sessionID, err := r.client.Get(ctx, guildKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get active session ID: %w", err)
	}

	sess, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			// Stale pointer; clean it up
			r.client.Del(ctx, guildKey)
		}
		return nil, err
	}

	return sess, nil
}

// GetActiveSessions retrieves all non-terminal sessions from Redis
func (r *redisRepository) GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error) {
	sessionIDs, err := r.client.SMembers(ctx, activeSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active session IDs: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &GetActiveSessionsOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd)
	for _, id := range sessionIDs {
		cmds[id] = pipe.Get(ctx, sessionKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for id, cmd := range cmds {
		raw, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session was removed between listing and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", id, err)
		}

		var sess models.Session
		if err := json.Unmarshal([]byte(raw), &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
		}

		sessions = append(sessions, &sess)
	}

	return &GetActiveSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SaveSession persists a session to Redis and keeps the guild pointer
// and active index consistent with the session state.
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	guildKey := guildActivePrefix + sess.GuildID

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+sess.ID, payload, 0)

	if sess.State == models.SessionStateCompleted {
		pipe.Del(ctx, guildKey)
		pipe.SRem(ctx, activeSessionsKey, sess.ID)
	} else {
		pipe.Set(ctx, guildKey, sess.ID, 0)
		pipe.SAdd(ctx, activeSessionsKey, sess.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// AppendParticipant performs an atomic "append if joinable and not
// already present" using an optimistic WATCH transaction, so two users
// joining at the same moment are both recorded.
func (r *redisRepository) AppendParticipant(ctx context.Context, input *AppendParticipantInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" || input.Participant == nil {
		return nil, errors.New("input, session ID and participant cannot be empty")
	}

	key := sessionKeyPrefix + input.SessionID
	var updated *models.Session

	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		var sess models.Session
		if err := json.Unmarshal([]byte(raw), &sess); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		if sess.State != models.SessionStateWaiting {
			return ErrSessionNotJoinable
		}

		if sess.HasParticipant(input.Participant.UserID) {
			return ErrAlreadyJoined
		}

		sess.Participants = append(sess.Participants, input.Participant)

		payload, err := json.Marshal(&sess)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &sess
		return nil
	}

	for attempt := 0; attempt < maxAppendRetries; attempt++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race with another joiner; re-read and retry
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to append participant after %d attempts: %w", maxAppendRetries, redis.TxFailedErr)
}

// SetSessionMessage records the announcement message ID on a session
func (r *redisRepository) SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	sess, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return err
	}

	sess.MessageID = input.MessageID

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+sess.ID, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session message: %w", err)
	}

	return nil
}
