package app

import (
	"sort"
	"time"

	"hacknight-service/internal/domain"
)

// Rank derives the ordered scoreboard from players given in registration
// order. Keys: Completed before InProgress, then points descending, then
// (among Completed with equal points) smaller elapsed time. Remaining ties
// keep their input order. Ranks are contiguous and 1-based; equal keys still
// get distinct sequential ranks.
func Rank(players []domain.Player) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, domain.LeaderboardEntry{
			ID:          p.ID,
			Name:        p.Name,
			Roll:        p.Roll,
			Points:      p.Points,
			Status:      p.Status,
			TimeElapsed: elapsedSeconds(p),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Status == domain.StatusCompleted) != (b.Status == domain.StatusCompleted) {
			return a.Status == domain.StatusCompleted
		}
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Status == domain.StatusCompleted && b.Status == domain.StatusCompleted &&
			a.TimeElapsed != nil && b.TimeElapsed != nil {
			return *a.TimeElapsed < *b.TimeElapsed
		}
		return false
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func elapsedSeconds(p domain.Player) *int64 {
	if p.FinishTime == nil {
		return nil
	}
	secs := int64(p.FinishTime.Sub(p.StartTime).Round(time.Second).Seconds())
	return &secs
}
