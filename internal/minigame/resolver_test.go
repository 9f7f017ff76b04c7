package minigame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danblock97/astrostats/internal/models"
)

func buildParticipants(alive, eliminated int) []*models.Participant {
	var out []*models.Participant
	for i := 0; i < alive; i++ {
		out = append(out, &models.Participant{
			UserID: string(rune('a' + i)),
			Status: models.ParticipantStatusAlive,
		})
	}
	for i := 0; i < eliminated; i++ {
		out = append(out, &models.Participant{
			UserID: string(rune('A' + i)),
			Status: models.ParticipantStatusEliminated,
		})
	}
	return out
}

func TestResolveRound_InputNotMutated(t *testing.T) {
	resolver := NewResolver(&Config{Seed: 1})
	input := buildParticipants(5, 0)

	// Run enough rounds that at least one elimination happens
	for i := 0; i < 20; i++ {
		resolver.ResolveRound(input)
	}

	for _, p := range input {
		assert.Equal(t, models.ParticipantStatusAlive, p.Status)
	}
}

func TestResolveRound_EliminationCap(t *testing.T) {
	resolver := NewResolver(&Config{Seed: 42})
	input := buildParticipants(30, 0)

	for i := 0; i < 50; i++ {
		updated, _ := resolver.ResolveRound(input)

		eliminated := 0
		for _, p := range updated {
			if p.Status == models.ParticipantStatusEliminated {
				eliminated++
			}
		}
		assert.LessOrEqual(t, eliminated, MaxEliminationsPerRound)
	}
}

func TestResolveRound_EliminatedStayEliminated(t *testing.T) {
	resolver := NewResolver(&Config{Seed: 7})
	input := buildParticipants(3, 4)

	for i := 0; i < 20; i++ {
		updated, _ := resolver.ResolveRound(input)
		require.Len(t, updated, 7)

		for j, p := range updated {
			if input[j].Status == models.ParticipantStatusEliminated {
				assert.Equal(t, models.ParticipantStatusEliminated, p.Status,
					"already-eliminated participant must stay eliminated")
			}
		}
	}
}

func TestResolveRound_Deterministic(t *testing.T) {
	first := NewResolver(&Config{Seed: 99})
	second := NewResolver(&Config{Seed: 99})

	inputA := buildParticipants(10, 0)
	inputB := buildParticipants(10, 0)

	updatedA, gameA := first.ResolveRound(inputA)
	updatedB, gameB := second.ResolveRound(inputB)

	assert.Equal(t, gameA.Name, gameB.Name)
	for i := range updatedA {
		assert.Equal(t, updatedA[i].Status, updatedB[i].Status)
	}
}

func TestResolveRound_PicksFromCatalog(t *testing.T) {
	resolver := NewResolver(&Config{Seed: 3})

	_, chosen := resolver.ResolveRound(buildParticipants(2, 0))

	found := false
	for _, m := range Catalog {
		if m.Name == chosen.Name {
			found = true
			assert.Equal(t, m.EliminationProbability, chosen.EliminationProbability)
		}
	}
	assert.True(t, found)
}

func TestCatalog_Probabilities(t *testing.T) {
	require.Len(t, Catalog, 15)
	for _, m := range Catalog {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Description)
		assert.Greater(t, m.EliminationProbability, 0.0)
		assert.LessOrEqual(t, m.EliminationProbability, 0.5)
	}
}
