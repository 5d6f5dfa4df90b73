package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/dots-game/internal/dots"
	"github.com/rocketscienceinc/dots-game/internal/entity"
)

// maxRandomAttempts bounds the random strategy's search for an empty cell.
const maxRandomAttempts = 500

var ErrUnknownGameMode = errors.New("unknown game mode")

// BotService computes and plays one bot move. A nil point with a nil error
// means the bot has no move to report: either its placement filled the board
// or no empty cell was found within the attempt cap.
type BotService interface {
	MakeTurn(game *entity.Game) (*entity.Point, error)
}

type botService struct {
	controller *dots.GameController
	rnd        *rand.Rand
}

// NewBotService builds a bot over the given controller. The random source is
// injected so tests can pin the tie-break and sampling behavior.
func NewBotService(controller *dots.GameController, rnd *rand.Rand) BotService {
	return &botService{
		controller: controller,
		rnd:        rnd,
	}
}

func (that *botService) MakeTurn(game *entity.Game) (*entity.Point, error) {
	switch game.Mode {
	case entity.ModeBotRandom:
		return that.makeRandomTurn(game)
	case entity.ModeBotSmart:
		return that.makeSmartTurn(game)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameMode, game.Mode)
	}
}

// makeRandomTurn samples uniform coordinates until an empty cell turns up,
// capped at maxRandomAttempts. Exhausting the cap is reported as a pass, not
// an error; it only happens on a nearly full board.
func (that *botService) makeRandomTurn(game *entity.Game) (*entity.Point, error) {
	for attempt := 0; attempt < maxRandomAttempts; attempt++ {
		x := that.rnd.Intn(game.Board.Width + 1)
		y := that.rnd.Intn(game.Board.Height + 1)
		if !game.Board.IsValidMove(x, y) {
			continue
		}

		return that.playAt(game, entity.Point{X: x, Y: y})
	}

	return nil, nil
}

// makeSmartTurn prefers a capturing move, then a proximity-scored move next
// to the opponent's dots, then falls back to the random strategy.
func (that *botService) makeSmartTurn(game *entity.Game) (*entity.Point, error) {
	if move := findCaptureMove(game.Board); move != nil {
		return that.playAt(game, *move)
	}

	if move := that.findProximityMove(game.Board); move != nil {
		return that.playAt(game, *move)
	}

	return that.makeRandomTurn(game)
}

// findCaptureMove scans the board in row-major order for the first empty cell
// whose placement would leave an adjacent blue group enclosed. The probe runs
// against the current position without placing anything: the candidate cell
// joins the flood fill as an empty cell, so an enclosed result means playing
// there seals the group. The heuristic always hunts the blue side, as the
// original engine assumed the human plays blue.
func findCaptureMove(board *entity.Board) *entity.Point {
	for y := 0; y <= board.Height; y++ {
		for x := 0; x <= board.Width; x++ {
			if !board.IsValidMove(x, y) {
				continue
			}
			if wouldCaptureBlue(board, x, y) {
				return &entity.Point{X: x, Y: y}
			}
		}
	}
	return nil
}

func wouldCaptureBlue(board *entity.Board, x, y int) bool {
	for _, d := range entity.FourDirections {
		nx, ny := x+d.X, y+d.Y
		if !board.InBounds(nx, ny) || board.At(nx, ny) != entity.PlayerBlue {
			continue
		}

		if group := dots.AnalyzeGroup(board, entity.Point{X: nx, Y: ny}, entity.PlayerBlue); group.Enclosed {
			return true
		}
	}
	return false
}

// findProximityMove collects empty cells 8-adjacent to blue dots and picks
// the highest scoring one. Equal scores are settled by a coin flip that may
// replace the current best with each later tie, so the pick leans toward
// earlier candidates without being deterministic.
func (that *botService) findProximityMove(board *entity.Board) *entity.Point {
	blueDots := collectMarks(board, entity.PlayerBlue)
	if len(blueDots) == 0 {
		return nil
	}

	var candidates []entity.Point
	for _, dot := range blueDots {
		for _, d := range entity.EightDirections {
			nx, ny := dot.X+d.X, dot.Y+d.Y
			if board.IsValidMove(nx, ny) {
				candidates = append(candidates, entity.Point{X: nx, Y: ny})
			}
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	bestScore := -1
	for _, candidate := range candidates {
		score := proximityScore(board, candidate)
		if score > bestScore || (score == bestScore && that.rnd.Intn(2) == 0) {
			bestScore = score
			best = candidate
		}
	}

	return &best
}

// proximityScore weighs a candidate by its 8 neighbors: blue dots count 3,
// the bot's own red dots count 1.
func proximityScore(board *entity.Board, candidate entity.Point) int {
	score := 0
	for _, d := range entity.EightDirections {
		switch board.At(candidate.X+d.X, candidate.Y+d.Y) {
		case entity.PlayerBlue:
			score += 3
		case entity.PlayerRed:
			score++
		}
	}
	return score
}

func collectMarks(board *entity.Board, mark string) []entity.Point {
	var marks []entity.Point
	for y := 0; y <= board.Height; y++ {
		for x := 0; x <= board.Width; x++ {
			if board.At(x, y) == mark {
				marks = append(marks, entity.Point{X: x, Y: y})
			}
		}
	}
	return marks
}

func (that *botService) playAt(game *entity.Game, move entity.Point) (*entity.Point, error) {
	ended, err := that.controller.SubmitMove(game, move.X, move.Y)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}
	if ended {
		return nil, nil
	}

	return &move, nil
}
