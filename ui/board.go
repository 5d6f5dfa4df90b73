// Package ui is the terminal host for the dots engine, built on tview. It
// owns everything the engine treats as collaborator work: rendering, input,
// the deferred bot turn and the leaderboard screens.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/dots-game/internal/entity"
)

// cellWidth is the number of screen columns per board intersection; the gap
// column doubles as the slot for horizontal connection segments.
const cellWidth = 2

// BoardUI renders the dots grid inside a tview.Box and tracks the cursor.
type BoardUI struct {
	Box  *tview.Box
	game *entity.Game

	selX int
	selY int
}

func NewBoardUI() *BoardUI {
	board := &BoardUI{
		Box:  tview.NewBox(),
		selX: 0,
		selY: 0,
	}

	board.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		board.draw(screen, x+1, y+1)
		return x, y, width, height
	})

	return board
}

// SetGame points the widget at a fresh match and recenters the cursor.
func (that *BoardUI) SetGame(game *entity.Game) {
	that.game = game
	if game != nil {
		that.selX = game.Board.Width / 2
		that.selY = game.Board.Height / 2
	}
}

func (that *BoardUI) SelectedTile() entity.Point {
	return entity.Point{X: that.selX, Y: that.selY}
}

// MoveSelection shifts the cursor by (h, v), clamped to the board.
func (that *BoardUI) MoveSelection(h, v int) {
	if that.game == nil {
		return
	}
	if nx := that.selX + h; that.game.Board.InBounds(nx, that.selY) {
		that.selX = nx
	}
	if ny := that.selY + v; that.game.Board.InBounds(that.selX, ny) {
		that.selY = ny
	}
}

func (that *BoardUI) draw(screen tcell.Screen, originX, originY int) {
	if that.game == nil {
		return
	}

	board := that.game.Board

	for boardY := 0; boardY <= board.Height; boardY++ {
		for boardX := 0; boardX <= board.Width; boardX++ {
			style := tcell.StyleDefault
			drawRune := '·'

			switch board.At(boardX, boardY) {
			case entity.PlayerBlue:
				drawRune = '●'
				style = style.Foreground(tcell.ColorBlue)
			case entity.PlayerRed:
				drawRune = '●'
				style = style.Foreground(tcell.ColorRed)
			default:
				style = style.Foreground(tcell.ColorGray)
			}

			if boardX == that.selX && boardY == that.selY && that.game.IsOngoing() {
				style = style.Reverse(true)
			}

			screen.SetContent(originX+boardX*cellWidth, originY+boardY, drawRune, nil, style)
		}
	}

	that.drawSegments(screen, originX, originY)
}

// drawSegments marks horizontal connections in the gap column between two
// linked dots. Vertical and diagonal segments have no spare screen cell at
// this scale, so only the horizontal ones get ink; the full segment list
// still lives on the game state.
func (that *BoardUI) drawSegments(screen tcell.Screen, originX, originY int) {
	for _, segment := range that.game.Segments {
		if segment.From.Y != segment.To.Y {
			continue
		}

		left := segment.From.X
		if segment.To.X < left {
			left = segment.To.X
		}
		if segment.From.X == segment.To.X {
			continue
		}

		style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
		if segment.Mark == entity.PlayerRed {
			style = style.Foreground(tcell.ColorRed)
		}

		screen.SetContent(originX+left*cellWidth+1, originY+segment.From.Y, '─', nil, style)
	}
}
