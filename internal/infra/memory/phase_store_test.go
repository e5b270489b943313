package memory

import (
	"context"
	"testing"

	"hacknight-service/internal/domain"
)

func TestPhaseStoreDefaultsToWaiting(t *testing.T) {
	ctx := context.Background()
	store := NewPhaseStore()

	phase, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if phase != domain.PhaseWaiting {
		t.Fatalf("expected waiting, got %s", phase)
	}

	if err := store.Set(ctx, domain.PhaseActive); err != nil {
		t.Fatalf("set: %v", err)
	}
	phase, err = store.Get(ctx)
	if err != nil || phase != domain.PhaseActive {
		t.Fatalf("expected active, got %s %v", phase, err)
	}
}
