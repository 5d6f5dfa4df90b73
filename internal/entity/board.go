package entity

// Board is the dots grid. Coordinates run over inclusive ranges
// [0..Width] x [0..Height], so a Width x Height board has
// (Width+1)*(Height+1) addressable intersections. Cells is a flat buffer
// indexed y*(Width+1)+x.
type Board struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	FilledCells int      `json:"filled_cells"`
	Cells       []string `json:"cells"`
}

func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		Cells:  make([]string, (width+1)*(height+1)),
	}
}

func (that *Board) TotalCells() int {
	return (that.Width + 1) * (that.Height + 1)
}

func (that *Board) InBounds(x, y int) bool {
	return x >= 0 && x <= that.Width && y >= 0 && y <= that.Height
}

// At returns the mark at (x, y). Out-of-bounds reads return EmptyCell.
func (that *Board) At(x, y int) string {
	if !that.InBounds(x, y) {
		return EmptyCell
	}
	return that.Cells[y*(that.Width+1)+x]
}

func (that *Board) IsValidMove(x, y int) bool {
	return that.InBounds(x, y) && that.Cells[y*(that.Width+1)+x] == EmptyCell
}

// Place sets the cell at (x, y) to the given mark. Invalid placements are
// ignored; callers are expected to check IsValidMove first.
func (that *Board) Place(x, y int, mark string) {
	if !that.IsValidMove(x, y) {
		return
	}

	that.Cells[y*(that.Width+1)+x] = mark
	that.FilledCells++
}

func (that *Board) IsFull() bool {
	return that.FilledCells >= that.TotalCells()
}
