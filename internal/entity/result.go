package entity

import "time"

const (
	StatusOver = "over"
	StatusQuit = "quit"
)

// Result is the record of a finished session. It is written once and never resumed.
// Size is the value the board was created with, not the width of its grid.
type Result struct {
	ID         string    `json:"id"`
	Variant    string    `json:"variant"`
	Size       int       `json:"size"`
	Score      int       `json:"score"`
	Moves      int       `json:"moves"`
	Status     string    `json:"status"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *Result) IsOver() bool {
	return that.Status == StatusOver
}

func (that *Result) IsQuit() bool {
	return that.Status == StatusQuit
}
