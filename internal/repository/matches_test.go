package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/dots-game/internal/entity"
	"github.com/rocketscienceinc/dots-game/internal/repository/storage/sqlite"
)

func newMatchRepo(t *testing.T) MatchRepository {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "matches.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Init(context.Background()))

	return NewMatchRepository(store)
}

func TestMatchRepository_SaveAndListRecent(t *testing.T) {
	t.Run("Saved matches come back newest first", func(t *testing.T) {
		// Given: two archived matches
		repo := newMatchRepo(t)
		ctx := context.Background()

		first := entity.MatchResult{
			Mode:       entity.ModeBotSmart,
			BlueScore:  7,
			RedScore:   4,
			Winner:     entity.PlayerBlue,
			FinishedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		second := entity.MatchResult{
			Mode:       entity.ModePVP,
			BlueScore:  2,
			RedScore:   2,
			Winner:     entity.WinnerDraw,
			FinishedAt: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		// When: listing recent matches
		results, err := repo.ListRecent(ctx, 10)

		// Then: both rows return, latest insert first
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, entity.ModePVP, results[0].Mode)
		assert.Equal(t, entity.WinnerDraw, results[0].Winner)
		assert.Equal(t, entity.ModeBotSmart, results[1].Mode)
		assert.Equal(t, 7, results[1].BlueScore)
		assert.True(t, first.FinishedAt.Equal(results[1].FinishedAt))
	})

	t.Run("Zero finish time is stamped on save", func(t *testing.T) {
		// Given: a result without a finish timestamp
		repo := newMatchRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, entity.MatchResult{
			Mode:      entity.ModeBotRandom,
			BlueScore: 1,
			Winner:    entity.PlayerBlue,
		}))

		// When: reading the row back
		results, err := repo.ListRecent(ctx, 1)

		// Then: the repository filled in the timestamp
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].FinishedAt.IsZero())
	})

	t.Run("Limit trims the result set", func(t *testing.T) {
		// Given: three archived matches
		repo := newMatchRepo(t)
		ctx := context.Background()
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Save(ctx, entity.MatchResult{
				Mode:      entity.ModePVP,
				BlueScore: i,
				Winner:    entity.PlayerBlue,
			}))
		}

		// When: asking for one row
		results, err := repo.ListRecent(ctx, 1)

		// Then: only the newest row returns
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 2, results[0].BlueScore)
	})
}
