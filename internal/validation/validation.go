package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/justjelku/wordle-clone/internal/models"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	guessRegex    = regexp.MustCompile(`^[a-zA-Z]{5}$`)
	dateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername checks the 3-12 character alphanumeric username rules.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ValidationError{Field: "username", Message: "username is required"}
	}
	if len(username) < 3 || len(username) > 12 {
		return ValidationError{Field: "username", Message: "username must be 3-12 characters"}
	}
	if !usernameRegex.MatchString(username) {
		return ValidationError{Field: "username", Message: "username must contain only letters and digits"}
	}
	return nil
}

// ValidateGuess checks that a guess is exactly five letters.
func ValidateGuess(guess string) error {
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return ValidationError{Field: "guess", Message: "guess is required"}
	}
	if !guessRegex.MatchString(guess) {
		return ValidationError{Field: "guess", Message: "guess must be exactly 5 letters"}
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD calendar-day key.
func ValidateDate(date string) error {
	if date == "" {
		return ValidationError{Field: "date", Message: "date is required"}
	}
	if !dateRegex.MatchString(date) {
		return ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	}
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return ValidationError{Field: "date", Message: "invalid calendar date"}
	}
	return nil
}
