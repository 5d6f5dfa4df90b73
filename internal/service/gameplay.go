package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/dots-game/internal/dots"
	"github.com/rocketscienceinc/dots-game/internal/entity"
	"github.com/rocketscienceinc/dots-game/internal/repository"
)

// GamePlayService drives one match at a time for the host: human turns, bot
// turns, early or board-full finishes, and result persistence.
type GamePlayService interface {
	NewMatch(width, height int, mode string) *entity.Game

	MakeTurn(game *entity.Game, x, y int) (bool, error)
	MakeBotTurn(game *entity.Game) (*entity.Point, error)

	EndMatch(ctx context.Context, game *entity.Game) (entity.MatchResult, error)

	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
	RecordScore(ctx context.Context, name string, score int) (bool, error)
}

type gamePlayService struct {
	logger *slog.Logger

	controller      *dots.GameController
	botService      BotService
	leaderboardRepo repository.LeaderboardRepository
	matchRepo       repository.MatchRepository
}

func NewGamePlayService(
	logger *slog.Logger,
	controller *dots.GameController,
	botService BotService,
	leaderboardRepo repository.LeaderboardRepository,
	matchRepo repository.MatchRepository,
) GamePlayService {
	return &gamePlayService{
		logger:          logger.With("component", "gameplay"),
		controller:      controller,
		botService:      botService,
		leaderboardRepo: leaderboardRepo,
		matchRepo:       matchRepo,
	}
}

// NewMatch starts a fresh match. Any previous game is simply abandoned; a
// Game is never reused across matches.
func (that *gamePlayService) NewMatch(width, height int, mode string) *entity.Game {
	that.logger.Info("starting new match", "mode", mode, "width", width, "height", height)
	return entity.NewGame(width, height, mode)
}

func (that *gamePlayService) MakeTurn(game *entity.Game, x, y int) (bool, error) {
	ended, err := that.controller.SubmitMove(game, x, y)
	if err != nil {
		return false, fmt.Errorf("failed to make turn: %w", err)
	}

	return ended, nil
}

// MakeBotTurn lets the bot play one move. A nil point means the match ended
// or the bot passed; the caller can tell by checking game.IsFinished.
func (that *gamePlayService) MakeBotTurn(game *entity.Game) (*entity.Point, error) {
	move, err := that.botService.MakeTurn(game)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

// EndMatch finalizes a match and archives its result. The board does not
// have to be full: the host may end a match early.
func (that *gamePlayService) EndMatch(ctx context.Context, game *entity.Game) (entity.MatchResult, error) {
	game.Status = entity.StatusFinished
	result := game.Result()

	that.logger.Info("match finished",
		"winner", result.Winner, "blue", result.BlueScore, "red", result.RedScore)

	if err := that.matchRepo.Save(ctx, result); err != nil {
		return result, fmt.Errorf("failed to archive match: %w", err)
	}

	return result, nil
}

func (that *gamePlayService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	entries, err := that.leaderboardRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return entries, nil
}

func (that *gamePlayService) RecordScore(ctx context.Context, name string, score int) (bool, error) {
	accepted, err := that.leaderboardRepo.Update(ctx, name, score)
	if err != nil {
		return false, fmt.Errorf("failed to update leaderboard: %w", err)
	}

	return accepted, nil
}
