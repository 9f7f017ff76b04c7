package models

import (
	"time"
)

// SessionState represents the lifecycle state of a Squib Game session
type SessionState string

const (
	// SessionStateWaiting indicates a session is waiting for players to join
	SessionStateWaiting SessionState = "waiting_for_players"

	// SessionStateInProgress indicates the round loop is running
	SessionStateInProgress SessionState = "in_progress"

	// SessionStateCompleted indicates the session has finished (terminal)
	SessionStateCompleted SessionState = "completed"
)

// Session represents one Squib Game tournament, scoped to a guild,
// from creation to completion. At most one session per guild may be in
// a non-terminal state at any time.
type Session struct {
	// ID is the external handle for the session, derived from the
	// guild, the host, and the creation timestamp
	ID string

	// GuildID is the Discord server the session belongs to
	GuildID string

	// HostUserID is the user who created the session
	HostUserID string

	// ChannelID is the channel the session was started in; round
	// updates and the final summary are posted there
	ChannelID string

	// MessageID is the announcement message carrying the Join button
	MessageID string

	// State is the current lifecycle state
	State SessionState

	// CurrentRound is the number of rounds resolved so far
	CurrentRound int

	// Participants holds every joined player in join order
	Participants []*Participant

	// CreatedAt is when the session was created (UTC)
	CreatedAt time.Time
}

// Alive returns the participants still alive, in join order.
func (s *Session) Alive() []*Participant {
	var alive []*Participant
	for _, p := range s.Participants {
		if p.Status == ParticipantStatusAlive {
			alive = append(alive, p)
		}
	}
	return alive
}

// Eliminated returns the participants already eliminated, in join order.
func (s *Session) Eliminated() []*Participant {
	var out []*Participant
	for _, p := range s.Participants {
		if p.Status == ParticipantStatusEliminated {
			out = append(out, p)
		}
	}
	return out
}

// HasParticipant reports whether the user already joined this session.
func (s *Session) HasParticipant(userID string) bool {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
