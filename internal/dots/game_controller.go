package dots

import (
	"fmt"

	"github.com/rocketscienceinc/dots-game/internal/apperror"
	"github.com/rocketscienceinc/dots-game/internal/entity"
)

// ScoreSink receives a notification after any score change so the host can
// refresh its scoreboard. It is the only callback the engine needs from its
// host.
type ScoreSink interface {
	OnScoreChanged()
}

// ScoreSinkFunc adapts a plain function to the ScoreSink interface.
type ScoreSinkFunc func()

func (that ScoreSinkFunc) OnScoreChanged() {
	that()
}

type GameController struct {
	sink ScoreSink
}

func NewGameController(sink ScoreSink) *GameController {
	return &GameController{sink: sink}
}

// SubmitMove places the current player's dot at (x, y) and resolves the
// turn: segments, captures, self-capture, then the player switch. It reports
// whether the move ended the match. Rejected moves leave the game untouched.
func (that *GameController) SubmitMove(game *entity.Game, x, y int) (bool, error) {
	if game.IsFinished() {
		return false, apperror.ErrGameFinished
	}

	if err := validateMove(game, x, y); err != nil {
		return false, fmt.Errorf("invalid turn: %w", err)
	}

	mover := game.Turn
	game.Board.Place(x, y, mover)

	if game.Board.IsFull() {
		// The filling move ends the match on the spot; captures are not
		// evaluated for it.
		game.Status = entity.StatusFinished
		return true, nil
	}

	game.AddSegments(x, y, mover)

	if captured := resolveOpponentCaptures(game, x, y, mover); captured > 0 {
		game.Scores[mover] += captured
		that.notifyScoreChanged()
	}

	if lost := resolveSelfCapture(game, x, y, mover); lost > 0 {
		game.Scores[entity.ToggleMark(mover)] += lost
		that.notifyScoreChanged()
	}

	game.Turn = entity.ToggleMark(mover)

	return false, nil
}

func validateMove(game *entity.Game, x, y int) error {
	if !game.Board.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	if game.Board.At(x, y) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

func (that *GameController) notifyScoreChanged() {
	if that.sink != nil {
		that.sink.OnScoreChanged()
	}
}
