package entity

import "time"

// MatchResult is the archived outcome of a finished match. FinishedAt is set
// by the repository when the result is saved.
type MatchResult struct {
	Mode       string    `json:"mode"`
	BlueScore  int       `json:"blue_score"`
	RedScore   int       `json:"red_score"`
	Winner     string    `json:"winner"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

func (that MatchResult) WinningScore() int {
	if that.RedScore > that.BlueScore {
		return that.RedScore
	}
	return that.BlueScore
}

// LeaderboardEntry is one row of the persisted ranked list.
type LeaderboardEntry struct {
	Place int    `json:"place"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}
