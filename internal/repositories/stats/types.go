package stats

import (
	"github.com/danblock97/astrostats/internal/models"
)

// RecordResultInput contains parameters for recording a session result
type RecordResultInput struct {
	UserID  string
	GuildID string

	// Username is the display name snapshot stored for leaderboards
	Username string

	// WinIncrement is 0 or 1
	WinIncrement int
}

// RecordResultOutput contains the updated totals
type RecordResultOutput struct {
	// Wins is the user's new win total in this guild
	Wins int

	// GamesPlayed is the user's new games-played total in this guild
	GamesPlayed int
}

// GetStatsInput contains parameters for retrieving a stats record
type GetStatsInput struct {
	UserID  string
	GuildID string
}

// GetLeaderboardInput contains parameters for the guild leaderboard
type GetLeaderboardInput struct {
	GuildID string

	// Limit caps the number of entries returned; defaults to 10
	Limit int
}

// GetLeaderboardOutput contains the ranked stats records
type GetLeaderboardOutput struct {
	Entries []*models.PlayerStats
}
