package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"hacknight-service/internal/domain"
)

// PlayerStore persists players in Postgres. ApplyAward is a single
// conditional UPDATE, so the point increment, solved bit, and completion
// stamp land together or not at all, and concurrent submissions of the
// same challenge can only award once.
type PlayerStore struct {
	pool *pgxpool.Pool
}

func NewPlayerStore(pool *pgxpool.Pool) *PlayerStore {
	return &PlayerStore{pool: pool}
}

func (s *PlayerStore) Create(ctx context.Context, player domain.Player) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO players (id, name, roll, points, status, solved, start_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, player.ID, player.Name, player.Roll, player.Points, string(player.Status), int64(player.Solved), player.StartTime)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

func (s *PlayerStore) Get(ctx context.Context, id string) (domain.Player, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, roll, points, status, solved, start_time, finish_time
		FROM players WHERE id = $1
	`, id)
	player, err := scanPlayer(row)
	if err == pgx.ErrNoRows {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	if err != nil {
		return domain.Player{}, fmt.Errorf("get player: %w", err)
	}
	return player, nil
}

func (s *PlayerStore) List(ctx context.Context) ([]domain.Player, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, roll, points, status, solved, start_time, finish_time
		FROM players ORDER BY start_time, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := make([]domain.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerStore) ApplyAward(ctx context.Context, id string, points int, bit uint32, complete bool, finishedAt time.Time) (domain.Player, bool, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE players
		SET points = points + $2,
		    solved = solved | $3,
		    status = CASE WHEN $4 THEN 'Completed' ELSE status END,
		    finish_time = CASE WHEN $4 AND finish_time IS NULL THEN $5 ELSE finish_time END
		WHERE id = $1 AND (solved & $3) = 0
		RETURNING id, name, roll, points, status, solved, start_time, finish_time
	`, id, points, int64(bit), complete, finishedAt)
	player, err := scanPlayer(row)
	if err == nil {
		return player, true, nil
	}
	if err != pgx.ErrNoRows {
		return domain.Player{}, false, fmt.Errorf("apply award: %w", err)
	}

	// Either the player does not exist or the challenge was already solved;
	// a plain read tells the two apart.
	player, err = s.Get(ctx, id)
	if err != nil {
		return domain.Player{}, false, err
	}
	return player, false, nil
}

func (s *PlayerStore) DeleteAll(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (domain.Player, error) {
	var (
		player domain.Player
		status string
		solved int64
		finish *time.Time
	)
	if err := row.Scan(&player.ID, &player.Name, &player.Roll, &player.Points, &status, &solved, &player.StartTime, &finish); err != nil {
		return domain.Player{}, err
	}
	player.Status = domain.PlayerStatus(status)
	player.Solved = uint32(solved)
	player.FinishTime = finish
	return player, nil
}
