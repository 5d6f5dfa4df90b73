package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const defaultLeaderboardFile = "dots-game/leaderboard.json"

// FileStorage keeps the blob in a single file on disk. This is the default
// leaderboard backend.
type FileStorage struct {
	path string
}

// NewFileStorage builds a file backend at the given path. An empty path
// resolves to the user's XDG data directory.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		resolved, err := xdg.DataFile(defaultLeaderboardFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data file path: %w", err)
		}
		path = resolved
	}

	return &FileStorage{path: path}, nil
}

func (that *FileStorage) Read(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", that.path, err)
	}

	return raw, nil
}

func (that *FileStorage) Write(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(that.path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(that.path), err)
	}

	if err := os.WriteFile(that.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", that.path, err)
	}

	return nil
}
