package app

import (
	"sync"

	"hacknight-service/internal/domain"
)

// broadcaster fans leaderboard snapshots out to live subscribers.
type broadcaster struct {
	mu          sync.Mutex
	subscribers map[chan []domain.LeaderboardEntry]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		subscribers: make(map[chan []domain.LeaderboardEntry]struct{}),
	}
}

func (b *broadcaster) subscribe(initial []domain.LeaderboardEntry) (<-chan []domain.LeaderboardEntry, func()) {
	ch := make(chan []domain.LeaderboardEntry, 8)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	ch <- initial

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subscribers[ch]; ok {
			delete(b.subscribers, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

func (b *broadcaster) hasSubscribers() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers) > 0
}

func (b *broadcaster) publish(entries []domain.LeaderboardEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- entries:
		default:
			// Slow clients only ever need the latest snapshot; drop the
			// stale one rather than block the publisher.
			select {
			case <-ch:
			default:
			}
			ch <- entries
		}
	}
}
