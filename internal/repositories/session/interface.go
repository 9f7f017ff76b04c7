package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/danblock97/astrostats/internal/repositories/session Repository

import (
	"context"

	"github.com/danblock97/astrostats/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// CreateSession inserts a new waiting session. Fails with
	// ErrActiveSessionExists if the guild already has a non-terminal
	// session; the check-and-insert is atomic at the storage layer.
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetActiveSession retrieves the guild's non-terminal session, if any
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*models.Session, error)

	// GetActiveSessions retrieves every non-terminal session across guilds
	GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error)

	// SaveSession persists the full session document; saving a
	// completed session clears the guild's active-session pointer
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// AppendParticipant atomically appends a participant to a session
	// that is still waiting for players and does not already contain
	// the user. Returns the updated session.
	AppendParticipant(ctx context.Context, input *AppendParticipantInput) (*models.Session, error)

	// SetSessionMessage records the announcement message ID on a session
	SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) error
}
