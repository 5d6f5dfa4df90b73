// Package dots implements the capture rules of the dots game: group
// connectivity, enclosure detection and turn resolution.
package dots

import (
	"github.com/rocketscienceinc/dots-game/internal/entity"
)

// Group is the 4-connected region of one player's marks and empty cells
// reachable from a seed intersection. Enclosed reports whether every
// non-member boundary neighbor of the region holds the opposing mark.
type Group struct {
	Cells    []entity.Point
	Enclosed bool
}

// AnalyzeGroup flood-fills from seed over cells that are empty or hold the
// given mark. Touching the board edge clears Enclosed but never stops the
// fill: the region is always traversed completely before the boundary check
// runs. The seed cell must be in bounds.
func AnalyzeGroup(board *entity.Board, seed entity.Point, mark string) Group {
	opponent := entity.ToggleMark(mark)
	rowWidth := board.Width + 1

	visited := make([]bool, board.TotalCells())
	visited[seed.Y*rowWidth+seed.X] = true

	group := Group{Enclosed: true}
	queue := []entity.Point{seed}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		group.Cells = append(group.Cells, current)

		for _, d := range entity.FourDirections {
			nx, ny := current.X+d.X, current.Y+d.Y
			if !board.InBounds(nx, ny) {
				group.Enclosed = false
				continue
			}
			if visited[ny*rowWidth+nx] {
				continue
			}
			if cell := board.At(nx, ny); cell == mark || cell == entity.EmptyCell {
				visited[ny*rowWidth+nx] = true
				queue = append(queue, entity.Point{X: nx, Y: ny})
			}
		}
	}

	// Every in-bounds neighbor outside the region must hold the opposing
	// mark; the first violation settles it. Visited doubles as the region
	// membership set here, since only enqueued cells were marked.
	for _, cell := range group.Cells {
		if !group.Enclosed {
			break
		}
		for _, d := range entity.FourDirections {
			nx, ny := cell.X+d.X, cell.Y+d.Y
			if !board.InBounds(nx, ny) || visited[ny*rowWidth+nx] {
				continue
			}
			if board.At(nx, ny) != opponent {
				group.Enclosed = false
				break
			}
		}
	}

	return group
}

// CountMarks returns how many cells of the group hold the given mark. Empty
// cells inside an enclosed region never score.
func (that Group) CountMarks(board *entity.Board, mark string) int {
	count := 0
	for _, cell := range that.Cells {
		if board.At(cell.X, cell.Y) == mark {
			count++
		}
	}
	return count
}
