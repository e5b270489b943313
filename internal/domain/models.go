package domain

import "time"

// PlayerStatus tracks whether a player is still solving challenges.
type PlayerStatus string

const (
	StatusInProgress PlayerStatus = "InProgress"
	StatusCompleted  PlayerStatus = "Completed"
)

// Player is one registered participant and their accumulated progress.
// Solved is a bitmask of passed challenge ordinals (bit N-1 for challenge N);
// it keeps repeated submissions of the same challenge from re-awarding points.
type Player struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Roll       string       `json:"roll"`
	Points     int          `json:"points"`
	Status     PlayerStatus `json:"status"`
	Solved     uint32       `json:"-"`
	StartTime  time.Time    `json:"start_time"`
	FinishTime *time.Time   `json:"finish_time"`
}

// Phase gates gameplay. Admin actions move it; every client page polls it.
type Phase string

const (
	PhaseWaiting Phase = "waiting"
	PhaseActive  Phase = "active"
	PhaseStopped Phase = "stopped"
)

// ValidPhase reports whether s names a known phase.
func ValidPhase(s string) bool {
	switch Phase(s) {
	case PhaseWaiting, PhaseActive, PhaseStopped:
		return true
	}
	return false
}

// Challenge is one entry of the fixed catalog. Options is non-nil only for
// multiple-choice prompts. Answer comparison is case-insensitive exact match.
type Challenge struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"-"`
}

// SubmitResult is the outcome of one answer submission.
type SubmitResult struct {
	Correct       bool
	AlreadySolved bool
	IsComplete    bool
	Player        Player
}

// LeaderboardEntry is one ranked row. TimeElapsed is whole seconds between
// start and finish, nil while the player is still in progress.
type LeaderboardEntry struct {
	Rank        int          `json:"rank"`
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Roll        string       `json:"roll"`
	Points      int          `json:"points"`
	Status      PlayerStatus `json:"status"`
	TimeElapsed *int64       `json:"timeElapsed"`
}
