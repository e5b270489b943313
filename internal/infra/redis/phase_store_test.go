package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"hacknight-service/internal/domain"
)

func newTestStore(t *testing.T) (*PhaseStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPhaseStore(client), mr
}

func TestPhaseStoreMissingKeyReadsAsWaiting(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	phase, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if phase != domain.PhaseWaiting {
		t.Fatalf("expected waiting, got %s", phase)
	}
}

func TestPhaseStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	if err := store.Set(ctx, domain.PhaseActive); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := mr.Get("game:phase"); got != "active" {
		t.Fatalf("expected redis key to hold active, got %q", got)
	}

	phase, err := store.Get(ctx)
	if err != nil || phase != domain.PhaseActive {
		t.Fatalf("expected active, got %s %v", phase, err)
	}
}

func TestPhaseStoreGarbageValueReadsAsWaiting(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	_ = mr.Set("game:phase", "bogus")
	phase, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if phase != domain.PhaseWaiting {
		t.Fatalf("expected waiting fallback, got %s", phase)
	}
}
