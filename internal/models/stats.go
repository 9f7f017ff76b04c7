package models

import (
	"time"
)

// PlayerStats is the long-lived per-user, per-guild record of Squib
// Game results
type PlayerStats struct {
	// UserID is the Discord user ID
	UserID string

	// GuildID is the Discord server the stats are scoped to
	GuildID string

	// Username is the display name snapshot from the most recent win
	Username string

	// Wins is the number of sessions won
	Wins int

	// GamesPlayed counts result recordings for this user
	GamesPlayed int

	// UpdatedAt is when the record was last written
	UpdatedAt time.Time
}
