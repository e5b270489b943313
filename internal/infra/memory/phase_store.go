package memory

import (
	"context"
	"sync"

	"hacknight-service/internal/domain"
)

// PhaseStore keeps the game phase in process memory. A restart falls back to
// the waiting phase; deployments that need the phase to survive restarts or
// span instances should use the Redis implementation instead.
type PhaseStore struct {
	mu    sync.RWMutex
	phase domain.Phase
}

func NewPhaseStore() *PhaseStore {
	return &PhaseStore{phase: domain.PhaseWaiting}
}

func (s *PhaseStore) Get(_ context.Context) (domain.Phase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase, nil
}

func (s *PhaseStore) Set(_ context.Context, phase domain.Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
	return nil
}
