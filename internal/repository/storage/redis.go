package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "dots:leaderboard"

// RedisStorage keeps the blob under a fixed redis key, for a leaderboard
// shared between machines.
type RedisStorage struct {
	Connection *redis.Client
}

func NewRedisStorage(ctx context.Context, addr string) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	raw, err := that.Connection.Get(ctx, leaderboardKey).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return raw, nil
}

func (that *RedisStorage) Write(ctx context.Context, data []byte) error {
	if err := that.Connection.Set(ctx, leaderboardKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set leaderboard: %w", err)
	}

	return nil
}

func (that *RedisStorage) Close() error {
	return that.Connection.Close()
}
