package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"hacknight-service/internal/domain"
)

func TestPlayerStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewPlayerStore()

	player := domain.Player{ID: "p1", Name: "Alice", Roll: "CS-101", Status: domain.StatusInProgress, StartTime: time.Now()}
	if err := store.Create(ctx, player); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice" || got.Roll != "CS-101" {
		t.Fatalf("unexpected player %+v", got)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlayerStoreListKeepsRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	store := NewPlayerStore()

	for _, id := range []string{"p3", "p1", "p2"} {
		if err := store.Create(ctx, domain.Player{ID: id, StartTime: time.Now()}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	players, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	for i, want := range []string{"p3", "p1", "p2"} {
		if players[i].ID != want {
			t.Fatalf("expected %s at index %d, got %s", want, i, players[i].ID)
		}
	}
}

func TestPlayerStoreApplyAwardIsIdempotentPerBit(t *testing.T) {
	ctx := context.Background()
	store := NewPlayerStore()

	start := time.Now()
	if err := store.Create(ctx, domain.Player{ID: "p1", Status: domain.StatusInProgress, StartTime: start}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, applied, err := store.ApplyAward(ctx, "p1", 10, domain.SolvedBit(1), false, start)
	if err != nil || !applied {
		t.Fatalf("expected applied award, got applied=%v err=%v", applied, err)
	}
	if updated.Points != 10 {
		t.Fatalf("expected 10 points, got %d", updated.Points)
	}

	updated, applied, err = store.ApplyAward(ctx, "p1", 10, domain.SolvedBit(1), false, start)
	if err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if applied || updated.Points != 10 {
		t.Fatalf("expected no-op on solved bit, got applied=%v points=%d", applied, updated.Points)
	}

	finish := start.Add(time.Minute)
	updated, applied, err = store.ApplyAward(ctx, "p1", 10, domain.SolvedBit(5), true, finish)
	if err != nil || !applied {
		t.Fatalf("expected applied completion, got applied=%v err=%v", applied, err)
	}
	if updated.Status != domain.StatusCompleted || updated.FinishTime == nil || !updated.FinishTime.Equal(finish) {
		t.Fatalf("expected completed with finish time, got %+v", updated)
	}

	if _, _, err := store.ApplyAward(ctx, "missing", 10, domain.SolvedBit(1), false, start); !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlayerStoreDeleteAll(t *testing.T) {
	ctx := context.Background()
	store := NewPlayerStore()

	_ = store.Create(ctx, domain.Player{ID: "p1", StartTime: time.Now()})
	_ = store.Create(ctx, domain.Player{ID: "p2", StartTime: time.Now()})

	if err := store.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	players, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected empty store, got %d players", len(players))
	}
}
