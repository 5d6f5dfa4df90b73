package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

const (
	ModePVP       = "pvp"
	ModeBotRandom = "bot_random"
	ModeBotSmart  = "bot_smart"
)

const WinnerDraw = "draw"

// Segment connects two 8-adjacent marks of one player. The host draws these
// as lines between dots; they carry no weight in the game rules.
type Segment struct {
	From Point  `json:"from"`
	To   Point  `json:"to"`
	Mark string `json:"mark"`
}

// Game holds the full state of one match. A Game is created fresh per match
// and discarded once the match ends.
type Game struct {
	Board        *Board         `json:"board"`
	Turn         string         `json:"turn"`
	Scores       map[string]int `json:"scores"`
	LastCaptured int            `json:"last_captured"`
	Segments     []Segment      `json:"segments,omitempty"`
	Status       string         `json:"status"`
	Mode         string         `json:"mode,omitempty"`
}

func NewGame(width, height int, mode string) *Game {
	return &Game{
		Board:  NewBoard(width, height),
		Turn:   PlayerBlue,
		Scores: map[string]int{PlayerBlue: 0, PlayerRed: 0},
		Status: StatusOngoing,
		Mode:   mode,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBotRandom || that.Mode == ModeBotSmart
}

// AddSegments records one segment from (x, y) to every mark of the same
// player on an 8-adjacent intersection. Each adjacent pair yields exactly one
// segment; duplicates are skipped.
func (that *Game) AddSegments(x, y int, mark string) {
	for _, d := range EightDirections {
		nx, ny := x+d.X, y+d.Y
		if !that.Board.InBounds(nx, ny) || that.Board.At(nx, ny) != mark {
			continue
		}

		segment := Segment{From: Point{X: x, Y: y}, To: Point{X: nx, Y: ny}, Mark: mark}
		if that.hasSegment(segment) {
			continue
		}

		that.Segments = append(that.Segments, segment)
	}
}

func (that *Game) hasSegment(segment Segment) bool {
	for _, existing := range that.Segments {
		if existing == segment {
			return true
		}
		if existing.Mark == segment.Mark && existing.From == segment.To && existing.To == segment.From {
			return true
		}
	}
	return false
}

// Result determines the match outcome from the current scores. A draw
// reports the shared high score as the winning score.
func (that *Game) Result() MatchResult {
	result := MatchResult{
		Mode:      that.Mode,
		BlueScore: that.Scores[PlayerBlue],
		RedScore:  that.Scores[PlayerRed],
	}

	switch {
	case result.BlueScore > result.RedScore:
		result.Winner = PlayerBlue
	case result.RedScore > result.BlueScore:
		result.Winner = PlayerRed
	default:
		result.Winner = WinnerDraw
	}

	return result
}
