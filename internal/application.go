package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/dots-game/internal/config"
	"github.com/rocketscienceinc/dots-game/internal/dots"
	"github.com/rocketscienceinc/dots-game/internal/repository"
	"github.com/rocketscienceinc/dots-game/internal/repository/storage"
	"github.com/rocketscienceinc/dots-game/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/dots-game/internal/service"
	"github.com/rocketscienceinc/dots-game/ui"
)

const defaultSQLitePath = "dots.db"

// RunApp - builds the object graph and runs the terminal host until it exits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	leaderboardStore, closeStore, err := buildLeaderboardStorage(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open leaderboard storage: %w", err)
	}
	defer func() {
		if err = closeStore(); err != nil {
			log.Error("could not close leaderboard storage", "error", err)
		}
	}()

	sqlitePath := conf.SQLitePath
	if sqlitePath == "" {
		sqlitePath = defaultSQLitePath
	}

	sqliteStorage, err := sqlite.New(sqlitePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}
	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	leaderboardRepo := repository.NewLeaderboardRepository(leaderboardStore)
	matchRepo := repository.NewMatchRepository(sqliteStorage)

	host := ui.New(logger, conf)

	gameController := dots.NewGameController(dots.ScoreSinkFunc(host.RefreshScores))

	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game moves, not secrets
	botService := service.NewBotService(gameController, rnd)

	gamePlay := service.NewGamePlayService(logger, gameController, botService, leaderboardRepo, matchRepo)

	log.Info("Starting terminal host", "mode", conf.Mode)
	if err = host.Run(ctx, gamePlay); err != nil {
		return fmt.Errorf("terminal host error: %w", err)
	}

	return nil
}

// buildLeaderboardStorage prefers the redis backend when an address is
// configured and falls back to the local JSON file otherwise.
func buildLeaderboardStorage(ctx context.Context, conf *config.Config) (storage.Storage, func() error, error) {
	if conf.Redis.Addr != "" {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.Addr)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		return redisStorage, redisStorage.Close, nil
	}

	fileStorage, err := storage.NewFileStorage(conf.LeaderboardPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open file storage: %w", err)
	}

	return fileStorage, func() error { return nil }, nil
}
