package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/danblock97/astrostats/internal/repositories/stats Repository

import (
	"context"

	"github.com/danblock97/astrostats/internal/models"
)

// Repository defines the interface for per-user, per-guild stats
// persistence
type Repository interface {
	// RecordResult upserts the user's stats record, incrementing
	// games_played by one and wins by the given increment. Returns the
	// updated win total.
	RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error)

	// GetStats retrieves a user's stats record
	GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error)

	// GetLeaderboard retrieves the guild's top players by win count
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
