package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rocketscienceinc/dots-game/internal/entity"
	"github.com/rocketscienceinc/dots-game/internal/repository/storage"
)

const (
	leaderboardSize = 3

	// PlaceholderName marks a leaderboard slot nobody has claimed yet.
	PlaceholderName = "None"
)

// LeaderboardRepository owns the ranked-list rules: exactly three records,
// placeholder slots until players claim them, descending by score.
type LeaderboardRepository interface {
	Load(ctx context.Context) ([]entity.LeaderboardEntry, error)
	Update(ctx context.Context, name string, score int) (bool, error)
}

type dbLeaderboard struct {
	store storage.Storage
}

func NewLeaderboardRepository(store storage.Storage) LeaderboardRepository {
	return &dbLeaderboard{
		store: store,
	}
}

// Load returns the stored entries, or three placeholders when nothing has
// been stored yet. Malformed stored data is a hard error; there is no
// partial recovery.
func (that *dbLeaderboard) Load(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	raw, err := that.store.Read(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return placeholderEntries(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	var entries []entity.LeaderboardEntry
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	if len(entries) == 0 {
		return placeholderEntries(), nil
	}

	return entries, nil
}

// Update offers a candidate result to the table. It reports false without
// touching the table when the lowest ranked slot is claimed and scores at
// least as high; otherwise the candidate is ranked in, the table is cut back
// to three rows, places renumbered and the result persisted.
func (that *dbLeaderboard) Update(ctx context.Context, name string, score int) (bool, error) {
	entries, err := that.Load(ctx)
	if err != nil {
		return false, err
	}

	lowest := entries[len(entries)-1]
	if lowest.Name != PlaceholderName && lowest.Score >= score {
		return false, nil
	}

	entries = append(entries, entity.LeaderboardEntry{Name: name, Score: score})

	// Placeholders rank as score -1 so claimed slots always come first.
	sort.SliceStable(entries, func(i, j int) bool {
		return rankScore(entries[i]) > rankScore(entries[j])
	})

	entries = entries[:leaderboardSize]
	for i := range entries {
		entries[i].Place = i + 1
	}

	raw, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err = that.store.Write(ctx, raw); err != nil {
		return false, fmt.Errorf("failed to persist leaderboard: %w", err)
	}

	return true, nil
}

func rankScore(entry entity.LeaderboardEntry) int {
	if entry.Name == PlaceholderName {
		return -1
	}
	return entry.Score
}

func placeholderEntries() []entity.LeaderboardEntry {
	entries := make([]entity.LeaderboardEntry, 0, leaderboardSize)
	for i := 0; i < leaderboardSize; i++ {
		entries = append(entries, entity.LeaderboardEntry{Place: i + 1, Name: PlaceholderName, Score: 0})
	}
	return entries
}
