package models

import "time"

// Completion is the lifecycle state of a game record.
type Completion string

const (
	CompletionPlaying Completion = "playing"
	CompletionWon     Completion = "won"
	CompletionLost    Completion = "lost"
)

// GameRecord is the persisted outcome (or in-progress state) of one player's
// attempt at one day's word. UserID is empty for anonymous play. Records are
// mutable while playing and immutable once won or lost. Version supports
// optimistic concurrency at the store boundary.
type GameRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId,omitempty"`
	Date       string     `json:"date"`
	Word       string     `json:"word"`
	Category   Category   `json:"category"`
	Guesses    []string   `json:"guesses"`
	Completed  Completion `json:"completed"`
	GuessCount int        `json:"guessCount"`
	Version    int        `json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IsTerminal reports whether the record can no longer change.
func (r *GameRecord) IsTerminal() bool {
	return r.Completed == CompletionWon || r.Completed == CompletionLost
}
