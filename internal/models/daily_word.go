package models

import "time"

// Category is one of the enumerated word categories used for generation.
type Category string

// Categories lists every category the word generator may pick from.
var Categories = []Category{
	"Animals", "Food", "Technology", "Nature", "Emotions",
	"Sports", "Music", "Travel", "Science", "Colors",
	"Weather", "Clothing", "Transportation", "Home", "School",
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DailyWord is the single target word active for one calendar date.
// At most one row exists per date; rows are immutable once created.
type DailyWord struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Word      string    `json:"word"` // exactly 5 uppercase letters
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateFormat is the calendar-day key format used throughout the system.
const DateFormat = "2006-01-02"

// Today returns the current date key in UTC.
func Today() string {
	return time.Now().UTC().Format(DateFormat)
}
