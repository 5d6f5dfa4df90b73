package entity

const (
	PlayerBlue = "blue"
	PlayerRed  = "red"

	EmptyCell = ""
)

// Point is a grid intersection. Boards address intersections, not squares.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	FourDirections = []Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

	EightDirections = []Point{
		{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
		{X: 0, Y: -1}, {X: 0, Y: 1},
		{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	}
)

func ToggleMark(currentMark string) string {
	if currentMark == PlayerBlue {
		return PlayerRed
	}
	return PlayerBlue
}
