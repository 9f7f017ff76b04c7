package squibgame

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/danblock97/astrostats/internal/services/squibgame Service

import (
	"context"

	"github.com/danblock97/astrostats/internal/models"
)

// Service defines the interface for the Squib Game engine
type Service interface {
	// StartSession creates a new waiting session for a guild with the
	// host as sole participant. Fails if the guild already has a
	// non-terminal session.
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// JoinSession adds a player to a waiting session. Joining twice or
	// joining a session that already started is rejected.
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// RunSession transitions a waiting session to in progress and
	// starts its automatic round loop. Any participant may run the
	// session, not just the host.
	RunSession(ctx context.Context, input *RunSessionInput) (*RunSessionOutput, error)

	// ResumeActiveRuns re-attaches round loops to every in-progress
	// session found in storage. Called once at startup.
	ResumeActiveRuns(ctx context.Context) (*ResumeActiveRunsOutput, error)

	// GetActiveSession retrieves the guild's current non-terminal
	// session, if any
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// SetSessionMessage records the announcement message carrying the
	// Join button so later interactions can update it
	SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) error

	// GetPlayerStats retrieves a player's lifetime record in a guild
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error)

	// GetLeaderboard retrieves the guild's top players by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
