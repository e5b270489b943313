package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"hacknight-service/internal/domain"
)

// PlayerStore abstracts how player records are stored (in-memory, Postgres, etc).
type PlayerStore interface {
	Create(ctx context.Context, player domain.Player) error
	Get(ctx context.Context, id string) (domain.Player, error)
	// List returns every player in registration order.
	List(ctx context.Context) ([]domain.Player, error)
	// ApplyAward atomically adds points and sets the solved bit for one
	// challenge. It reports applied=false, without mutating anything, when
	// the bit was already set. When complete is true the player is marked
	// Completed and finishedAt is stamped as the finish time.
	ApplyAward(ctx context.Context, id string, points int, bit uint32, complete bool, finishedAt time.Time) (domain.Player, bool, error)
	DeleteAll(ctx context.Context) error
}

// PhaseStore holds the shared game phase (in-memory or Redis).
type PhaseStore interface {
	Get(ctx context.Context) (domain.Phase, error)
	Set(ctx context.Context, phase domain.Phase) error
}

// GameService contains the game use cases: registration, answer evaluation,
// leaderboard ranking, and phase control.
type GameService struct {
	players PlayerStore
	phase   PhaseStore
	bc      *broadcaster
	sf      singleflight.Group
	now     func() time.Time
}

func NewGameService(players PlayerStore, phase PhaseStore) *GameService {
	return NewGameServiceWithClock(players, phase, time.Now)
}

// NewGameServiceWithClock allows deterministic timestamps in tests.
func NewGameServiceWithClock(players PlayerStore, phase PhaseStore, now func() time.Time) *GameService {
	return &GameService{
		players: players,
		phase:   phase,
		bc:      newBroadcaster(),
		now:     now,
	}
}

// Register creates a new player record with zero points. Registration stays
// open through the waiting lobby and the active game, but not after a stop.
func (s *GameService) Register(ctx context.Context, name, roll string) (domain.Player, error) {
	name = strings.TrimSpace(name)
	roll = strings.TrimSpace(roll)
	if name == "" || roll == "" {
		return domain.Player{}, domain.ErrMissingFields
	}

	phase, err := s.phase.Get(ctx)
	if err != nil {
		return domain.Player{}, err
	}
	if phase == domain.PhaseStopped {
		return domain.Player{}, domain.ErrGameNotActive
	}

	player := domain.Player{
		ID:        uuid.NewString(),
		Name:      name,
		Roll:      roll,
		Points:    0,
		Status:    domain.StatusInProgress,
		StartTime: s.now(),
	}
	if err := s.players.Create(ctx, player); err != nil {
		return domain.Player{}, err
	}

	s.publish(ctx)
	return player, nil
}

// Submit evaluates one answer. A wrong answer is a normal negative verdict,
// not an error. Awards are idempotent per challenge: re-answering a solved
// challenge returns a correct verdict with AlreadySolved set and no mutation.
func (s *GameService) Submit(ctx context.Context, playerID string, challengeID int, answer string) (domain.SubmitResult, error) {
	answer = strings.TrimSpace(answer)
	if playerID == "" || challengeID == 0 || answer == "" {
		return domain.SubmitResult{}, domain.ErrMissingFields
	}

	challenge, ok := domain.ChallengeByID(challengeID)
	if !ok {
		return domain.SubmitResult{}, domain.ErrChallengeNotFound
	}

	phase, err := s.phase.Get(ctx)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	if phase != domain.PhaseActive {
		return domain.SubmitResult{}, domain.ErrGameNotActive
	}

	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	if !strings.EqualFold(answer, challenge.Answer) {
		return domain.SubmitResult{Correct: false}, nil
	}

	complete := challengeID == domain.FinalChallengeID()
	updated, applied, err := s.players.ApplyAward(ctx, player.ID, domain.PointsPerChallenge, domain.SolvedBit(challengeID), complete, s.now())
	if err != nil {
		return domain.SubmitResult{}, err
	}
	if applied {
		s.publish(ctx)
	}

	return domain.SubmitResult{
		Correct:       true,
		AlreadySolved: !applied,
		IsComplete:    complete,
		Player:        updated,
	}, nil
}

// Leaderboard ranks all players, recomputed fresh on every call. Concurrent
// callers are coalesced into a single store scan.
func (s *GameService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	result, err, _ := s.sf.Do("leaderboard", func() (interface{}, error) {
		players, err := s.players.List(ctx)
		if err != nil {
			return nil, err
		}
		return Rank(players), nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.LeaderboardEntry), nil
}

// ClearPlayers wipes every player record without touching the phase.
func (s *GameService) ClearPlayers(ctx context.Context) error {
	if err := s.players.DeleteAll(ctx); err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

// Phase returns the current game phase.
func (s *GameService) Phase(ctx context.Context) (domain.Phase, error) {
	return s.phase.Get(ctx)
}

// SetPhase validates and stores a phase by name.
func (s *GameService) SetPhase(ctx context.Context, status string) (domain.Phase, error) {
	if !domain.ValidPhase(status) {
		return "", domain.ErrInvalidPhase
	}
	phase := domain.Phase(status)
	if err := s.phase.Set(ctx, phase); err != nil {
		return "", err
	}
	return phase, nil
}

// Control applies an admin action. Reset additionally deletes every player
// record; that side effect is irreversible.
func (s *GameService) Control(ctx context.Context, action string) (domain.Phase, error) {
	switch action {
	case "start":
		return s.setAndGet(ctx, domain.PhaseActive)
	case "stop":
		return s.setAndGet(ctx, domain.PhaseStopped)
	case "reset":
		phase, err := s.setAndGet(ctx, domain.PhaseWaiting)
		if err != nil {
			return "", err
		}
		if err := s.ClearPlayers(ctx); err != nil {
			return "", err
		}
		return phase, nil
	default:
		return "", domain.ErrInvalidAction
	}
}

func (s *GameService) setAndGet(ctx context.Context, phase domain.Phase) (domain.Phase, error) {
	if err := s.phase.Set(ctx, phase); err != nil {
		return "", err
	}
	return phase, nil
}

// Subscribe returns a channel seeded with the current leaderboard that then
// receives a fresh ranking after every mutation. The caller must invoke the
// returned cancel function to avoid leaks.
func (s *GameService) Subscribe(ctx context.Context) (<-chan []domain.LeaderboardEntry, func(), error) {
	entries, err := s.Leaderboard(ctx)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := s.bc.subscribe(entries)
	return ch, cancel, nil
}

// publish pushes a fresh ranking to subscribers, best effort.
func (s *GameService) publish(ctx context.Context) {
	if !s.bc.hasSubscribers() {
		return
	}
	entries, err := s.Leaderboard(ctx)
	if err != nil {
		return
	}
	s.bc.publish(entries)
}
