package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when nothing has been stored yet.
var ErrNotFound = errors.New("no stored data")

// Storage persists a single opaque blob. The leaderboard repository owns the
// format; backends only move bytes.
type Storage interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
