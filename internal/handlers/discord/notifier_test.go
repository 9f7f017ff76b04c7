package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danblock97/astrostats/internal/models"
	"github.com/danblock97/astrostats/internal/services/squibgame"
)

func TestSpotlightUserID_NoEliminationsFallsBackToHost(t *testing.T) {
	got := spotlightUserID(&squibgame.RoundNotification{
		Session: &models.Session{HostUserID: "host-1"},
	})

	assert.Equal(t, "host-1", got)
}

func TestSpotlightUserID_PicksAmongEliminated(t *testing.T) {
	notification := &squibgame.RoundNotification{
		Session: &models.Session{HostUserID: "host-1"},
		EliminatedThisRound: []*models.Participant{
			{UserID: "out-1", Status: models.ParticipantStatusEliminated},
			{UserID: "out-2", Status: models.ParticipantStatusEliminated},
			{UserID: "out-3", Status: models.ParticipantStatusEliminated},
		},
	}

	eliminated := map[string]bool{"out-1": true, "out-2": true, "out-3": true}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got := spotlightUserID(notification)
		assert.True(t, eliminated[got], "spotlight must be a player eliminated this round")
		seen[got] = true
	}

	// Not pinned to the first victim in join order
	assert.Greater(t, len(seen), 1)
}
