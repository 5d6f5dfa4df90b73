package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/dots-game/internal/entity"
	"github.com/rocketscienceinc/dots-game/internal/repository/storage"
)

func newFileRepo(t *testing.T) (LeaderboardRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leaderboard.json")
	store, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	return NewLeaderboardRepository(store), path
}

func seed(t *testing.T, repo LeaderboardRepository, results ...entity.LeaderboardEntry) {
	t.Helper()

	ctx := context.Background()
	for _, result := range results {
		accepted, err := repo.Update(ctx, result.Name, result.Score)
		require.NoError(t, err)
		require.True(t, accepted)
	}
}

func TestLeaderboardRepository_Load(t *testing.T) {
	t.Run("Absent file yields three placeholders", func(t *testing.T) {
		// Given: a repository over a file that was never written
		repo, _ := newFileRepo(t)

		// When: loading the table
		entries, err := repo.Load(context.Background())

		// Then: three unclaimed slots with places 1..3
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i, entry := range entries {
			assert.Equal(t, i+1, entry.Place)
			assert.Equal(t, PlaceholderName, entry.Name)
			assert.Equal(t, 0, entry.Score)
		}
	})

	t.Run("Malformed file is a hard error", func(t *testing.T) {
		// Given: a leaderboard file holding garbage
		repo, path := newFileRepo(t)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		// When: loading the table
		_, err := repo.Load(context.Background())

		// Then: the error surfaces instead of a silent default
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal leaderboard")
	})
}

func TestLeaderboardRepository_Update(t *testing.T) {
	t.Run("First result replaces a placeholder slot", func(t *testing.T) {
		// Given: an empty table
		repo, _ := newFileRepo(t)

		// When: the first player submits a score
		accepted, err := repo.Update(context.Background(), "Alice", 100)

		// Then: Alice tops the table and placeholders trail her
		require.NoError(t, err)
		assert.True(t, accepted)

		entries, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, entity.LeaderboardEntry{Place: 1, Name: "Alice", Score: 100}, entries[0])
		assert.Equal(t, PlaceholderName, entries[1].Name)
		assert.Equal(t, PlaceholderName, entries[2].Name)
	})

	t.Run("Mid-table result pushes the lowest entry out", func(t *testing.T) {
		// Given: a full table Alice(100), Bob(80), Charlie(50)
		repo, _ := newFileRepo(t)
		seed(t, repo,
			entity.LeaderboardEntry{Name: "Alice", Score: 100},
			entity.LeaderboardEntry{Name: "Bob", Score: 80},
			entity.LeaderboardEntry{Name: "Charlie", Score: 50})

		// When: Dave scores 90
		accepted, err := repo.Update(context.Background(), "Dave", 90)

		// Then: Dave slots into second place and Charlie is gone
		require.NoError(t, err)
		assert.True(t, accepted)

		entries, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, []entity.LeaderboardEntry{
			{Place: 1, Name: "Alice", Score: 100},
			{Place: 2, Name: "Dave", Score: 90},
			{Place: 3, Name: "Bob", Score: 80},
		}, entries)
	})

	t.Run("Too low a result is rejected and changes nothing", func(t *testing.T) {
		// Given: a full table with Charlie(50) in last place
		repo, _ := newFileRepo(t)
		seed(t, repo,
			entity.LeaderboardEntry{Name: "Alice", Score: 100},
			entity.LeaderboardEntry{Name: "Bob", Score: 80},
			entity.LeaderboardEntry{Name: "Charlie", Score: 50})

		// When: Eve scores 40
		accepted, err := repo.Update(context.Background(), "Eve", 40)

		// Then: the table is untouched
		require.NoError(t, err)
		assert.False(t, accepted)

		entries, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, []entity.LeaderboardEntry{
			{Place: 1, Name: "Alice", Score: 100},
			{Place: 2, Name: "Bob", Score: 80},
			{Place: 3, Name: "Charlie", Score: 50},
		}, entries)
	})

	t.Run("Equal score against the lowest entry is rejected", func(t *testing.T) {
		// Given: a full table with Charlie(50) in last place
		repo, _ := newFileRepo(t)
		seed(t, repo,
			entity.LeaderboardEntry{Name: "Alice", Score: 100},
			entity.LeaderboardEntry{Name: "Bob", Score: 80},
			entity.LeaderboardEntry{Name: "Charlie", Score: 50})

		// When: a score ties the lowest claimed slot
		accepted, err := repo.Update(context.Background(), "Eve", 50)

		// Then: ties never displace an existing entry
		require.NoError(t, err)
		assert.False(t, accepted)
	})

	t.Run("Zero score enters while placeholders remain", func(t *testing.T) {
		// Given: a table still holding placeholder slots
		repo, _ := newFileRepo(t)
		seed(t, repo, entity.LeaderboardEntry{Name: "Alice", Score: 100})

		// When: someone finishes with zero points
		accepted, err := repo.Update(context.Background(), "Bob", 0)

		// Then: a claimed slot always beats a placeholder
		require.NoError(t, err)
		assert.True(t, accepted)

		entries, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bob", entries[1].Name)
		assert.Equal(t, PlaceholderName, entries[2].Name)
	})
}
