package squibgame

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danblock97/astrostats/internal/common/clock"
	"github.com/danblock97/astrostats/internal/common/uuid"
	"github.com/danblock97/astrostats/internal/minigame"
	"github.com/danblock97/astrostats/internal/models"
	"github.com/danblock97/astrostats/internal/repositories/session"
	"github.com/danblock97/astrostats/internal/repositories/stats"
)

var (
	// ErrActiveSessionExists is returned when a guild already has a
	// session that has not completed
	ErrActiveSessionExists = errors.New("guild already has an active session")

	// ErrSessionNotFound is returned when a session doesn't exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionNotJoinable is returned when joining a session that
	// already started or finished
	ErrSessionNotJoinable = errors.New("session is no longer accepting players")

	// ErrAlreadyJoined is returned when a user joins a session twice
	ErrAlreadyJoined = errors.New("user already joined this session")

	// ErrNotEnoughPlayers is returned when running a session below the
	// minimum player count
	ErrNotEnoughPlayers = errors.New("not enough players to run the session")

	// ErrRunAlreadyActive is returned when running a session that is
	// already in progress
	ErrRunAlreadyActive = errors.New("session is already running")

	// ErrSessionCompleted is returned when running a finished session
	ErrSessionCompleted = errors.New("session has already completed")
)

// service implements the Service interface
type service struct {
	sessionRepo session.Repository
	statsRepo   stats.Repository
	resolver    minigame.Resolver
	notifier    Notifier
	clock       clock.Clock
	uuider      uuid.UUID

	minPlayers    int
	roundInterval time.Duration

	// activeRuns maps session ID to the run instance that owns its
	// loop, guarding against double-starting a loop in this process
	mu         sync.Mutex
	activeRuns map[string]string
}

// New creates a new Squib Game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionRepository == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.StatsRepository == nil {
		return nil, errors.New("stats repository cannot be nil")
	}

	if cfg.Resolver == nil {
		return nil, errors.New("resolver cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuider := cfg.UUIDGenerator
	if uuider == nil {
		uuider = uuid.New()
	}

	minPlayers := cfg.MinPlayers
	if minPlayers <= 0 {
		minPlayers = DefaultMinPlayers
	}

	interval := cfg.RoundInterval
	if interval <= 0 {
		interval = DefaultRoundInterval
	}

	return &service{
		sessionRepo:   cfg.SessionRepository,
		statsRepo:     cfg.StatsRepository,
		resolver:      cfg.Resolver,
		notifier:      cfg.Notifier,
		clock:         clk,
		uuider:        uuider,
		minPlayers:    minPlayers,
		roundInterval: interval,
		activeRuns:    make(map[string]string),
	}, nil
}

// StartSession creates a new waiting session with the host joined
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GuildID == "" || input.HostUserID == "" {
		return nil, errors.New("guild ID and host user ID cannot be empty")
	}

	now := s.clock.Now().UTC()

	newSession := &models.Session{
		ID:         fmt.Sprintf("%s_%s_%d", input.GuildID, input.HostUserID, now.Unix()),
		GuildID:    input.GuildID,
		HostUserID: input.HostUserID,
		ChannelID:  input.ChannelID,
		State:      models.SessionStateWaiting,
		Participants: []*models.Participant{
			{
				UserID:   input.HostUserID,
				Username: input.HostUsername,
				Status:   models.ParticipantStatusAlive,
			},
		},
		CreatedAt: now,
	}

	err := s.sessionRepo.CreateSession(ctx, &session.CreateSessionInput{
		Session: newSession,
	})
	if err != nil {
		if errors.Is(err, session.ErrActiveSessionExists) {
			return nil, ErrActiveSessionExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &StartSessionOutput{
		Session: newSession,
	}, nil
}

// JoinSession adds a player to a waiting session
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("session ID and user ID cannot be empty")
	}

	updated, err := s.sessionRepo.AppendParticipant(ctx, &session.AppendParticipantInput{
		SessionID: input.SessionID,
		Participant: &models.Participant{
			UserID:   input.UserID,
			Username: input.Username,
			Status:   models.ParticipantStatusAlive,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, session.ErrSessionNotJoinable):
			return nil, ErrSessionNotJoinable
		case errors.Is(err, session.ErrAlreadyJoined):
			return nil, ErrAlreadyJoined
		}
		return nil, fmt.Errorf("failed to join session: %w", err)
	}

	return &JoinSessionOutput{
		Session: updated,
	}, nil
}

// GetActiveSession retrieves the guild's current non-terminal session
func (s *service) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	active, err := s.sessionRepo.GetActiveSession(ctx, &session.GetActiveSessionInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}

	return &GetActiveSessionOutput{
		Session: active,
	}, nil
}

// SetSessionMessage records the announcement message on a session
func (s *service) SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) error {
	if input == nil || input.SessionID == "" || input.MessageID == "" {
		return errors.New("input, session ID and message ID cannot be empty")
	}

	err := s.sessionRepo.SetSessionMessage(ctx, &session.SetSessionMessageInput{
		SessionID: input.SessionID,
		MessageID: input.MessageID,
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to set session message: %w", err)
	}

	return nil
}

// GetPlayerStats retrieves a player's lifetime record in a guild
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.UserID == "" || input.GuildID == "" {
		return nil, errors.New("input, user ID and guild ID cannot be empty")
	}

	record, err := s.statsRepo.GetStats(ctx, &stats.GetStatsInput{
		UserID:  input.UserID,
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, stats.ErrStatsNotFound) {
			// No games yet reads as an all-zero record
			return &models.PlayerStats{
				UserID:  input.UserID,
				GuildID: input.GuildID,
			}, nil
		}
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return record, nil
}

// GetLeaderboard retrieves the guild's top players by wins
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	output, err := s.statsRepo.GetLeaderboard(ctx, &stats.GetLeaderboardInput{
		GuildID: input.GuildID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{
		Entries: output.Entries,
	}, nil
}
