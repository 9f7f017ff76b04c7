package session

import (
	"github.com/danblock97/astrostats/internal/models"
)

// CreateSessionInput contains parameters for inserting a new session
type CreateSessionInput struct {
	// Session is the fully built session document, in the waiting
	// state with the host as sole participant
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session by ID
type GetSessionInput struct {
	SessionID string
}

// GetActiveSessionInput contains parameters for the guild lookup
type GetActiveSessionInput struct {
	GuildID string
}

// GetActiveSessionsInput contains parameters for listing all
// non-terminal sessions
type GetActiveSessionsInput struct{}

// GetActiveSessionsOutput contains all non-terminal sessions
type GetActiveSessionsOutput struct {
	Sessions []*models.Session
}

// SaveSessionInput contains parameters for persisting a session
type SaveSessionInput struct {
	Session *models.Session
}

// AppendParticipantInput contains parameters for the atomic join
type AppendParticipantInput struct {
	SessionID string

	// Participant is the joining player, status alive
	Participant *models.Participant
}

// SetSessionMessageInput contains parameters for recording the
// announcement message
type SetSessionMessageInput struct {
	SessionID string
	MessageID string
}
