package squibgame

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/danblock97/astrostats/internal/minigame"
	"github.com/danblock97/astrostats/internal/models"
	"github.com/danblock97/astrostats/internal/repositories/session"
	"github.com/danblock97/astrostats/internal/repositories/stats"
)

// RunSession transitions a waiting session to in progress and spawns
// its round loop. The loop is owned by the service, not the caller:
// the caller's context only covers the transition itself.
func (s *service) RunSession(ctx context.Context, input *RunSessionInput) (*RunSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	current, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	switch current.State {
	case models.SessionStateInProgress:
		return nil, ErrRunAlreadyActive
	case models.SessionStateCompleted:
		return nil, ErrSessionCompleted
	}

	if len(current.Participants) < s.minPlayers {
		return nil, ErrNotEnoughPlayers
	}

	current.State = models.SessionStateInProgress
	current.CurrentRound = 0

	if err := s.sessionRepo.SaveSession(ctx, &session.SaveSessionInput{
		Session: current,
	}); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	runID, err := s.attachRun(current.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("starting round loop for session %s (run %s, %d players, requested by %s)",
		current.ID, runID, len(current.Participants), input.UserID)

	go s.runLoop(context.Background(), current.ID, runID)

	return &RunSessionOutput{
		Session: current,
		RunID:   runID,
	}, nil
}

// ResumeActiveRuns re-attaches round loops to in-progress sessions
// found in storage. Waiting sessions are left alone; they stay
// joinable and can still be run by a command.
func (s *service) ResumeActiveRuns(ctx context.Context) (*ResumeActiveRunsOutput, error) {
	output, err := s.sessionRepo.GetActiveSessions(ctx, &session.GetActiveSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	resumed := 0
	for _, sess := range output.Sessions {
		if sess.State != models.SessionStateInProgress {
			continue
		}

		runID, err := s.attachRun(sess.ID)
		if err != nil {
			// Already owned by a live loop in this process
			continue
		}

		log.Printf("resuming round loop for session %s (run %s, round %d)",
			sess.ID, runID, sess.CurrentRound)

		go s.runLoop(context.Background(), sess.ID, runID)
		resumed++
	}

	return &ResumeActiveRunsOutput{
		Resumed: resumed,
	}, nil
}

// attachRun registers a run instance for the session, rejecting a
// second loop for the same session within this process.
func (s *service) attachRun(sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.activeRuns[sessionID]; exists {
		return "", ErrRunAlreadyActive
	}

	runID := s.uuider.NewUUID()
	s.activeRuns[sessionID] = runID
	return runID, nil
}

// detachRun releases the session's run slot
func (s *service) detachRun(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.activeRuns, sessionID)
}

// runLoop plays rounds on an interval until one or zero players
// remain. Each iteration re-fetches the session so the loop survives
// restarts and never trusts a stale in-memory copy. The loop only
// stops on a terminal state or a definitively missing document;
// transient store failures are logged and retried on the next tick,
// because stopping would strand an in_progress session with no loop
// attached until the next process restart.
func (s *service) runLoop(ctx context.Context, sessionID, runID string) {
	defer s.detachRun(sessionID)

	for {
		current, err := s.sessionRepo.GetSession(ctx, &session.GetSessionInput{
			SessionID: sessionID,
		})
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				log.Printf("run %s: session %s is gone, stopping loop", runID, sessionID)
				return
			}

			log.Printf("run %s: failed to fetch session %s, retrying next tick: %v", runID, sessionID, err)
			time.Sleep(s.roundInterval)
			continue
		}

		// Someone else finished it, or the document was reset
		if current.State != models.SessionStateInProgress {
			log.Printf("run %s: session %s is %s, stopping loop", runID, sessionID, current.State)
			return
		}

		if len(current.Alive()) <= 1 {
			s.finalize(ctx, current, runID)
			return
		}

		if err := s.playRound(ctx, current); err != nil {
			// Leave the document untouched and retry next tick
			log.Printf("run %s: round %d failed for session %s: %v",
				runID, current.CurrentRound+1, sessionID, err)
		}

		time.Sleep(s.roundInterval)
	}
}

// playRound resolves one round, persists it, and notifies.
func (s *service) playRound(ctx context.Context, current *models.Session) error {
	aliveBefore := make(map[string]bool)
	for _, p := range current.Alive() {
		aliveBefore[p.UserID] = true
	}

	updated, chosen := s.resolver.ResolveRound(current.Participants)

	var newlyEliminated []*models.Participant
	for _, p := range updated {
		if p.Status == models.ParticipantStatusEliminated && aliveBefore[p.UserID] {
			newlyEliminated = append(newlyEliminated, p)
		}
	}

	current.Participants = updated
	current.CurrentRound++

	if err := s.sessionRepo.SaveSession(ctx, &session.SaveSessionInput{
		Session: current,
	}); err != nil {
		// Undo the in-memory bump so a retry replays the same round
		current.CurrentRound--
		return fmt.Errorf("failed to save round: %w", err)
	}

	s.notifyRound(ctx, current, chosen, newlyEliminated)
	return nil
}

// notifyRound builds flavor text and delivers the round event.
// Delivery failures are logged, never propagated.
func (s *service) notifyRound(ctx context.Context, current *models.Session, chosen minigame.Minigame, newlyEliminated []*models.Participant) {
	if s.notifier == nil {
		return
	}

	eliminatedNames := make([]string, 0, len(newlyEliminated))
	for _, p := range newlyEliminated {
		eliminatedNames = append(eliminatedNames, p.Username)
	}

	var aliveNames []string
	for _, p := range current.Alive() {
		aliveNames = append(aliveNames, p.Username)
	}

	notification := &RoundNotification{
		Session:             current,
		Round:               current.CurrentRound,
		Minigame:            chosen,
		EliminatedThisRound: newlyEliminated,
		Flavor:              minigame.GenerateFlavorText(chosen.Description, eliminatedNames, aliveNames),
	}

	if err := s.notifier.RoundPlayed(ctx, notification); err != nil {
		log.Printf("failed to deliver round notification for session %s: %v", current.ID, err)
	}
}

// finalize completes the session: one survivor wins and gets a stats
// record, zero survivors is an explicit draw with no stats written.
func (s *service) finalize(ctx context.Context, current *models.Session, runID string) {
	alive := current.Alive()

	current.State = models.SessionStateCompleted
	if err := s.sessionRepo.SaveSession(ctx, &session.SaveSessionInput{
		Session: current,
	}); err != nil {
		// The loop has already stopped; leave the document for the
		// resume path to pick up after a restart
		log.Printf("run %s: failed to complete session %s: %v", runID, current.ID, err)
		return
	}

	notification := &CompletionNotification{
		Session:     current,
		TotalRounds: current.CurrentRound,
	}

	if len(alive) == 1 {
		winner := alive[0]
		notification.Winner = winner

		result, err := s.statsRepo.RecordResult(ctx, &stats.RecordResultInput{
			UserID:       winner.UserID,
			GuildID:      current.GuildID,
			Username:     winner.Username,
			WinIncrement: 1,
		})
		if err != nil {
			log.Printf("run %s: failed to record win for %s in session %s: %v",
				runID, winner.UserID, current.ID, err)
		} else {
			notification.WinnerTotalWins = result.Wins
		}

		log.Printf("run %s: session %s completed, winner %s after %d rounds",
			runID, current.ID, winner.UserID, current.CurrentRound)
	} else {
		log.Printf("run %s: session %s completed in a draw after %d rounds",
			runID, current.ID, current.CurrentRound)
	}

	if s.notifier != nil {
		if err := s.notifier.SessionCompleted(ctx, notification); err != nil {
			log.Printf("failed to deliver completion notification for session %s: %v", current.ID, err)
		}
	}
}
