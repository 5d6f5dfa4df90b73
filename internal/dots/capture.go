package dots

import (
	"github.com/rocketscienceinc/dots-game/internal/entity"
)

// resolveOpponentCaptures probes the four neighbors of the dot just placed at
// (x, y) and totals the marks of every enclosed opponent group found. The
// four directions are probed independently with no shared visited set, so a
// group reachable from two directions is counted once per direction; this
// matches the original rules engine. The total also lands in
// game.LastCaptured, zero included.
func resolveOpponentCaptures(game *entity.Game, x, y int, mover string) int {
	opponent := entity.ToggleMark(mover)

	captured := 0
	for _, d := range entity.FourDirections {
		nx, ny := x+d.X, y+d.Y
		if !game.Board.InBounds(nx, ny) || game.Board.At(nx, ny) != opponent {
			continue
		}

		group := AnalyzeGroup(game.Board, entity.Point{X: nx, Y: ny}, opponent)
		if !group.Enclosed {
			continue
		}

		// Captured marks stay on the board; only the score moves.
		captured += group.CountMarks(game.Board, opponent)
	}

	game.LastCaptured = captured

	return captured
}

// resolveSelfCapture checks whether the mover's own adjacent groups ended up
// enclosed by the opponent after the placement at (x, y). Enclosed own marks
// are credited to the opponent, with the same per-direction counting as
// resolveOpponentCaptures.
func resolveSelfCapture(game *entity.Game, x, y int, mover string) int {
	lost := 0
	for _, d := range entity.FourDirections {
		nx, ny := x+d.X, y+d.Y
		if !game.Board.InBounds(nx, ny) || game.Board.At(nx, ny) != mover {
			continue
		}

		group := AnalyzeGroup(game.Board, entity.Point{X: nx, Y: ny}, mover)
		if !group.Enclosed {
			continue
		}

		lost += group.CountMarks(game.Board, mover)
	}

	return lost
}
