package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/dots-game/internal/entity"
	"github.com/rocketscienceinc/dots-game/internal/repository/storage/sqlite"
)

// MatchRepository archives finished matches.
type MatchRepository interface {
	Save(ctx context.Context, result entity.MatchResult) error
	ListRecent(ctx context.Context, limit int) ([]entity.MatchResult, error)
}

type dbMatch struct {
	storage *sqlite.Storage
}

func NewMatchRepository(storage *sqlite.Storage) MatchRepository {
	return &dbMatch{
		storage: storage,
	}
}

func (that *dbMatch) Save(ctx context.Context, result entity.MatchResult) error {
	if result.FinishedAt.IsZero() {
		result.FinishedAt = time.Now().UTC()
	}

	query := `INSERT INTO matches (mode, blue_score, red_score, winner, finished_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.storage.Connection.ExecContext(ctx, query,
		result.Mode, result.BlueScore, result.RedScore, result.Winner, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

func (that *dbMatch) ListRecent(ctx context.Context, limit int) ([]entity.MatchResult, error) {
	query := `SELECT mode, blue_score, red_score, winner, finished_at FROM matches ORDER BY id DESC LIMIT ?`

	rows, err := that.storage.Connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var results []entity.MatchResult
	for rows.Next() {
		var result entity.MatchResult
		if err = rows.Scan(&result.Mode, &result.BlueScore, &result.RedScore, &result.Winner, &result.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return results, nil
}
