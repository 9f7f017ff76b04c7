package models

// ParticipantStatus represents a participant's standing in a session
type ParticipantStatus string

const (
	// ParticipantStatusAlive indicates the player is still in the game
	ParticipantStatusAlive ParticipantStatus = "alive"

	// ParticipantStatusEliminated indicates the player is out; the
	// transition is one-way
	ParticipantStatusEliminated ParticipantStatus = "eliminated"
)

// Participant represents a player who joined a session
type Participant struct {
	// UserID is the Discord user ID, unique within a session
	UserID string

	// Username is the display name snapshot taken at join time
	Username string

	// Status is alive or eliminated
	Status ParticipantStatus
}
