package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"hacknight-service/internal/domain"
)

const phaseKey = "game:phase"

// PhaseStore shares the game phase through Redis so multiple instances (or
// a restarted one) agree on it. A missing key reads as the waiting phase.
type PhaseStore struct {
	client *redis.Client
}

func NewPhaseStore(client *redis.Client) *PhaseStore {
	return &PhaseStore{client: client}
}

func (s *PhaseStore) Get(ctx context.Context) (domain.Phase, error) {
	val, err := s.client.Get(ctx, phaseKey).Result()
	if err == redis.Nil {
		return domain.PhaseWaiting, nil
	}
	if err != nil {
		return "", fmt.Errorf("get phase: %w", err)
	}
	if !domain.ValidPhase(val) {
		return domain.PhaseWaiting, nil
	}
	return domain.Phase(val), nil
}

func (s *PhaseStore) Set(ctx context.Context, phase domain.Phase) error {
	if err := s.client.Set(ctx, phaseKey, string(phase), 0).Err(); err != nil {
		return fmt.Errorf("set phase: %w", err)
	}
	return nil
}
