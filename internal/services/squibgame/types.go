package squibgame

import (
	"time"

	"github.com/danblock97/astrostats/internal/common/clock"
	"github.com/danblock97/astrostats/internal/common/uuid"
	"github.com/danblock97/astrostats/internal/minigame"
	"github.com/danblock97/astrostats/internal/models"
	"github.com/danblock97/astrostats/internal/repositories/session"
	"github.com/danblock97/astrostats/internal/repositories/stats"
)

const (
	// DefaultMinPlayers is the minimum participant count needed to run
	DefaultMinPlayers = 2

	// DefaultRoundInterval is the pause between automatic rounds
	DefaultRoundInterval = 10 * time.Second
)

// Config holds configuration for the Squib Game service
type Config struct {
	// SessionRepository for session persistence
	SessionRepository session.Repository

	// StatsRepository for win/games-played records
	StatsRepository stats.Repository

	// Resolver decides eliminations each round
	Resolver minigame.Resolver

	// Notifier receives round and completion events. Optional; when
	// nil, events are dropped.
	Notifier Notifier

	// Clock for timestamps. Defaults to the system clock.
	Clock clock.Clock

	// UUIDGenerator for run instance IDs. Defaults to random UUIDs.
	UUIDGenerator uuid.UUID

	// MinPlayers required before a session may run. Defaults to 2.
	MinPlayers int

	// RoundInterval between automatic rounds. Defaults to 10 seconds.
	RoundInterval time.Duration
}

// StartSessionInput contains parameters for creating a session
type StartSessionInput struct {
	GuildID   string
	ChannelID string

	// HostUserID is the creating user; they are the first participant
	HostUserID   string
	HostUsername string
}

// StartSessionOutput contains the created session
type StartSessionOutput struct {
	Session *models.Session
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	SessionID string
	UserID    string
	Username  string
}

// JoinSessionOutput contains the session after the join
type JoinSessionOutput struct {
	Session *models.Session
}

// RunSessionInput contains parameters for starting the round loop
type RunSessionInput struct {
	SessionID string

	// UserID is the requesting user, recorded for logging only; any
	// participant may run the session
	UserID string
}

// RunSessionOutput contains the session in its in-progress state
type RunSessionOutput struct {
	Session *models.Session

	// RunID identifies this run instance in logs
	RunID string
}

// ResumeActiveRunsOutput reports how many round loops were re-attached
type ResumeActiveRunsOutput struct {
	Resumed int
}

// GetActiveSessionInput contains parameters for the guild lookup
type GetActiveSessionInput struct {
	GuildID string
}

// GetActiveSessionOutput contains the guild's non-terminal session
type GetActiveSessionOutput struct {
	Session *models.Session
}

// SetSessionMessageInput contains parameters for recording the
// announcement message
type SetSessionMessageInput struct {
	SessionID string
	MessageID string
}

// GetPlayerStatsInput contains parameters for a stats lookup
type GetPlayerStatsInput struct {
	UserID  string
	GuildID string
}

// GetLeaderboardInput contains parameters for the guild leaderboard
type GetLeaderboardInput struct {
	GuildID string

	// Limit caps the number of entries; defaults to 10
	Limit int
}

// GetLeaderboardOutput contains the ranked stats records
type GetLeaderboardOutput struct {
	Entries []*models.PlayerStats
}
