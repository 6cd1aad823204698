package game

import (
	"errors"
	"strings"

	"github.com/justjelku/wordle-clone/internal/models"
)

var (
	// ErrInvalidLength rejects guesses that are not exactly five letters.
	ErrInvalidLength = errors.New("guess must be exactly 5 letters")
	// ErrNotPlaying rejects input after the session reached a terminal state.
	ErrNotPlaying = errors.New("game is already over")
	// ErrUnknownWord rejects guesses not present in the dictionary.
	ErrUnknownWord = errors.New("not a recognized word")
)

// Dictionary is the word-list collaborator used to validate guesses.
type Dictionary interface {
	IsValidWord(word string) bool
}

// Session tracks one player's progress through a single daily word. The only
// transitions are playing -> won and playing -> lost; terminal sessions
// reject all further input. Buffer holds the uncommitted in-progress guess.
type Session struct {
	Target  string
	Guesses []string
	Buffer  string
	Status  models.Completion
}

// NewSession starts a fresh session for the given target word.
func NewSession(target string) *Session {
	return &Session{
		Target: strings.ToUpper(target),
		Status: models.CompletionPlaying,
	}
}

// Resume rebuilds a session from a persisted guess history.
func Resume(target string, guesses []string, status models.Completion) *Session {
	s := NewSession(target)
	s.Guesses = append(s.Guesses, guesses...)
	s.Status = status
	return s
}

// SubmitGuess commits one guess. The guess must be five letters and present
// in the dictionary (case-insensitive); rejected guesses are not appended and
// the player may retry. The session becomes won when the guess matches the
// target, lost when the fifth guess misses, and stays playing otherwise.
func (s *Session) SubmitGuess(guess string, dict Dictionary) error {
	if s.Status != models.CompletionPlaying {
		return ErrNotPlaying
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != WordLength {
		return ErrInvalidLength
	}
	if dict != nil && !dict.IsValidWord(guess) {
		return ErrUnknownWord
	}

	s.Guesses = append(s.Guesses, guess)
	s.Buffer = ""

	if guess == s.Target {
		s.Status = models.CompletionWon
	} else if len(s.Guesses) >= MaxGuesses {
		s.Status = models.CompletionLost
	}
	return nil
}

// InputLetter appends one character to the uncommitted guess buffer. Input on
// a full buffer or a finished game is silently ignored, matching interactive
// typing behaviour.
func (s *Session) InputLetter(letter string) {
	if s.Status != models.CompletionPlaying {
		return
	}
	if len(s.Buffer) >= WordLength || len(letter) != 1 {
		return
	}
	c := strings.ToUpper(letter)[0]
	if c < 'A' || c > 'Z' {
		return
	}
	s.Buffer += string(c)
}

// Backspace removes the last buffered character, if any.
func (s *Session) Backspace() {
	if s.Status != models.CompletionPlaying || len(s.Buffer) == 0 {
		return
	}
	s.Buffer = s.Buffer[:len(s.Buffer)-1]
}

// GuessCount returns the number of committed guesses.
func (s *Session) GuessCount() int {
	return len(s.Guesses)
}

// IsTerminal reports whether the session has ended.
func (s *Session) IsTerminal() bool {
	return s.Status != models.CompletionPlaying
}
