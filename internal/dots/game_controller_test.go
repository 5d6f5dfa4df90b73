package dots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/dots-game/internal/apperror"
	"github.com/rocketscienceinc/dots-game/internal/entity"
)

type countingSink struct {
	notified int
}

func (that *countingSink) OnScoreChanged() {
	that.notified++
}

func TestGameController_SubmitMove(t *testing.T) {
	t.Run("Accepted move places the dot and switches the player", func(t *testing.T) {
		// Given: a fresh match with blue to move
		controller := NewGameController(nil)
		game := entity.NewGame(5, 5, entity.ModePVP)

		// When: blue plays (2, 2)
		ended, err := controller.SubmitMove(game, 2, 2)

		// Then: the dot is on the board and it is red's turn
		require.NoError(t, err)
		assert.False(t, ended)
		assert.Equal(t, entity.PlayerBlue, game.Board.At(2, 2))
		assert.Equal(t, entity.PlayerRed, game.Turn)
		assert.Equal(t, 1, game.Board.FilledCells)
	})

	t.Run("Occupied cell is rejected without state change", func(t *testing.T) {
		// Given: blue already played (2, 2)
		controller := NewGameController(nil)
		game := entity.NewGame(5, 5, entity.ModePVP)
		_, err := controller.SubmitMove(game, 2, 2)
		require.NoError(t, err)

		// When: red tries the same cell
		_, err = controller.SubmitMove(game, 2, 2)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.PlayerBlue, game.Board.At(2, 2))
		assert.Equal(t, entity.PlayerRed, game.Turn)
		assert.Equal(t, 1, game.Board.FilledCells)
	})

	t.Run("Out-of-bounds cell is rejected without state change", func(t *testing.T) {
		// Given: a fresh match
		controller := NewGameController(nil)
		game := entity.NewGame(5, 5, entity.ModePVP)

		// When: blue aims past the grid
		_, err := controller.SubmitMove(game, 6, 0)

		// Then: the move is rejected and blue keeps the turn
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, entity.PlayerBlue, game.Turn)
		assert.Equal(t, 0, game.Board.FilledCells)
	})

	t.Run("Moves after the match ends are rejected", func(t *testing.T) {
		// Given: a finished match
		controller := NewGameController(nil)
		game := entity.NewGame(5, 5, entity.ModePVP)
		game.Status = entity.StatusFinished

		// When: someone keeps clicking
		_, err := controller.SubmitMove(game, 0, 0)

		// Then: the engine refuses
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Capture credits the mover and notifies the sink", func(t *testing.T) {
		// Given: a walled blue dot missing one wall cell, red to move
		sink := &countingSink{}
		controller := NewGameController(sink)
		game := entity.NewGame(5, 5, entity.ModePVP)
		placeAll(game.Board, entity.PlayerBlue, entity.Point{X: 2, Y: 2})
		placeAll(game.Board, entity.PlayerRed,
			entity.Point{X: 2, Y: 1}, entity.Point{X: 1, Y: 2}, entity.Point{X: 3, Y: 2})
		game.Turn = entity.PlayerRed

		// When: red seals the pocket
		ended, err := controller.SubmitMove(game, 2, 3)

		// Then: red scores the captured dot, the sink heard about it, and
		// the captured mark stays on the board
		require.NoError(t, err)
		assert.False(t, ended)
		assert.Equal(t, 1, game.Scores[entity.PlayerRed])
		assert.Equal(t, 0, game.Scores[entity.PlayerBlue])
		assert.Equal(t, 1, game.LastCaptured)
		assert.Equal(t, 1, sink.notified)
		assert.Equal(t, entity.PlayerBlue, game.Board.At(2, 2))
	})

	t.Run("Self-capture credits the opponent", func(t *testing.T) {
		// Given: a red pocket with one opening and a blue dot inside,
		// blue to move
		sink := &countingSink{}
		controller := NewGameController(sink)
		game := entity.NewGame(5, 5, entity.ModePVP)
		placeAll(game.Board, entity.PlayerBlue, entity.Point{X: 1, Y: 1})
		placeAll(game.Board, entity.PlayerRed,
			entity.Point{X: 1, Y: 0}, entity.Point{X: 0, Y: 1}, entity.Point{X: 2, Y: 1},
			entity.Point{X: 0, Y: 2}, entity.Point{X: 2, Y: 2}, entity.Point{X: 1, Y: 3})

		// When: blue fills its own pocket
		ended, err := controller.SubmitMove(game, 1, 2)

		// Then: red is credited both blue marks
		require.NoError(t, err)
		assert.False(t, ended)
		assert.Equal(t, 2, game.Scores[entity.PlayerRed])
		assert.Equal(t, 1, sink.notified)
	})

	t.Run("Filling move ends the match and skips captures", func(t *testing.T) {
		// Given: a 1x1 board with one free cell; red walled a blue dot so
		// the final placement would otherwise capture
		controller := NewGameController(nil)
		game := entity.NewGame(1, 1, entity.ModePVP)
		placeAll(game.Board, entity.PlayerBlue, entity.Point{X: 0, Y: 0})
		placeAll(game.Board, entity.PlayerRed,
			entity.Point{X: 1, Y: 0}, entity.Point{X: 0, Y: 1})
		game.Turn = entity.PlayerRed

		// When: red fills the last intersection
		ended, err := controller.SubmitMove(game, 1, 1)

		// Then: the match is over on the spot, no capture was evaluated
		// and the turn never switched
		require.NoError(t, err)
		assert.True(t, ended)
		assert.True(t, game.IsFinished())
		assert.Equal(t, 0, game.Scores[entity.PlayerRed])
		assert.Equal(t, 0, game.LastCaptured)
		assert.Equal(t, entity.PlayerRed, game.Turn)
	})

	t.Run("Segments appear for connected dots", func(t *testing.T) {
		// Given: blue dots at (1, 1) and (2, 2), played via the controller
		controller := NewGameController(nil)
		game := entity.NewGame(5, 5, entity.ModePVP)
		_, err := controller.SubmitMove(game, 1, 1)
		require.NoError(t, err)
		_, err = controller.SubmitMove(game, 4, 4) // red elsewhere
		require.NoError(t, err)

		// When: blue joins the diagonal
		_, err = controller.SubmitMove(game, 2, 2)
		require.NoError(t, err)

		// Then: one blue segment connects the pair
		require.Len(t, game.Segments, 1)
		assert.Equal(t, entity.PlayerBlue, game.Segments[0].Mark)
	})
}
