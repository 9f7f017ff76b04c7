package squibgame

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/danblock97/astrostats/internal/services/squibgame Notifier

import (
	"context"

	"github.com/danblock97/astrostats/internal/minigame"
	"github.com/danblock97/astrostats/internal/models"
)

// RoundNotification describes one resolved round
type RoundNotification struct {
	// Session after the round was persisted
	Session *models.Session

	// Round is the round number just played, starting at 1
	Round int

	// Minigame chosen for the round
	Minigame minigame.Minigame

	// EliminatedThisRound lists only the players who went from alive
	// to eliminated during this round
	EliminatedThisRound []*models.Participant

	// Flavor is the narrative text for the round
	Flavor string
}

// CompletionNotification describes a finished session
type CompletionNotification struct {
	// Session in its completed state
	Session *models.Session

	// Winner is the sole survivor, or nil when the session ended in a
	// draw with nobody left alive
	Winner *models.Participant

	// TotalRounds played before the session ended
	TotalRounds int

	// WinnerTotalWins is the winner's new lifetime win count in the
	// guild. Zero when there is no winner.
	WinnerTotalWins int
}

// Notifier receives engine events for delivery to the outside world.
// The engine treats delivery failures as non-fatal: the round loop
// keeps going even when a notification cannot be sent.
type Notifier interface {
	// RoundPlayed is called after each persisted round
	RoundPlayed(ctx context.Context, notification *RoundNotification) error

	// SessionCompleted is called once when a session finishes
	SessionCompleted(ctx context.Context, notification *CompletionNotification) error
}
