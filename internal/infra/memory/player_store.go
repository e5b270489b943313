package memory

import (
	"context"
	"sync"
	"time"

	"hacknight-service/internal/domain"
)

// PlayerStore is an in-memory implementation of app.PlayerStore, used when
// no Postgres URL is configured. Registration order is preserved for List
// so leaderboard ties stay stable.
type PlayerStore struct {
	mu      sync.RWMutex
	players map[string]*domain.Player
	order   []string
}

func NewPlayerStore() *PlayerStore {
	return &PlayerStore{
		players: make(map[string]*domain.Player),
	}
}

func (s *PlayerStore) Create(_ context.Context, player domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := player
	s.players[p.ID] = &p
	s.order = append(s.order, p.ID)
	return nil
}

func (s *PlayerStore) Get(_ context.Context, id string) (domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	return *player, nil
}

func (s *PlayerStore) List(_ context.Context) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]domain.Player, 0, len(s.order))
	for _, id := range s.order {
		if player, ok := s.players[id]; ok {
			players = append(players, *player)
		}
	}
	return players, nil
}

func (s *PlayerStore) ApplyAward(_ context.Context, id string, points int, bit uint32, complete bool, finishedAt time.Time) (domain.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[id]
	if !ok {
		return domain.Player{}, false, domain.ErrPlayerNotFound
	}
	if player.Solved&bit != 0 {
		return *player, false, nil
	}

	player.Points += points
	player.Solved |= bit
	if complete && player.FinishTime == nil {
		player.Status = domain.StatusCompleted
		t := finishedAt
		player.FinishTime = &t
	}
	return *player, true, nil
}

func (s *PlayerStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make(map[string]*domain.Player)
	s.order = nil
	return nil
}
