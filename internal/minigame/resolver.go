package minigame

import (
	"math/rand"
	"time"

	"github.com/danblock97/astrostats/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/danblock97/astrostats/internal/minigame Resolver

// Resolver decides which participants are eliminated in one round
type Resolver interface {
	// ResolveRound picks a minigame and returns a fresh participant
	// list with updated statuses, plus the chosen minigame. The input
	// list is never mutated. Participants already eliminated are left
	// untouched; at most MaxEliminationsPerRound alive participants
	// are newly eliminated.
	ResolveRound(participants []*models.Participant) ([]*models.Participant, Minigame)
}

// randomResolver implements Resolver with a private random source
type randomResolver struct {
	random *rand.Rand
}

// Config for the random resolver
type Config struct {
	// Optional seed for testing
	Seed int64
}

// NewResolver creates a resolver backed by its own random source.
// A zero seed falls back to the current time.
func NewResolver(cfg *Config) *randomResolver {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomResolver{
		random: rand.New(rand.NewSource(seed)),
	}
}

// ResolveRound runs one elimination pass over the participant list.
func (r *randomResolver) ResolveRound(participants []*models.Participant) ([]*models.Participant, Minigame) {
	chosen := Catalog[r.random.Intn(len(Catalog))]

	// Copy so callers can diff old vs new statuses
	updated := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		clone := *p
		updated = append(updated, &clone)
	}

	// Independent Bernoulli trial per alive participant; the number of
	// candidates varies round to round and may be zero
	var candidates []*models.Participant
	for _, p := range updated {
		if p.Status == models.ParticipantStatusAlive && r.random.Float64() < chosen.EliminationProbability {
			candidates = append(candidates, p)
		}
	}

	r.random.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for i, p := range candidates {
		if i >= MaxEliminationsPerRound {
			break
		}
		p.Status = models.ParticipantStatusEliminated
	}

	return updated, chosen
}
