package game

import (
	"strings"

	"github.com/justjelku/wordle-clone/internal/models"
)

const (
	// WordLength is the fixed length of every target word and guess.
	WordLength = 5
	// MaxGuesses is the number of attempts a player gets per daily word.
	MaxGuesses = 5
)

// ScoreFunc scores one committed guess against the target word, producing a
// status per letter position. Both inputs must be exactly WordLength letters.
type ScoreFunc func(guess, target string) ([]models.TileStatus, error)

// Score compares a guess against the target using the per-letter-presence
// rule: exact position match is correct, presence anywhere else in the target
// is wrong-position, absence is wrong.
//
// This rule deliberately does not account for duplicate letters: if the guess
// repeats a letter that occurs once in the target, every non-exact occurrence
// is reported as wrong-position. The keyboard aggregation and the rest of the
// game were built on this behaviour, so it is the default; see ScoreStrict
// for the duplicate-aware variant.
func Score(guess, target string) ([]models.TileStatus, error) {
	guess = strings.ToUpper(guess)
	target = strings.ToUpper(target)
	if len(guess) != WordLength || len(target) != WordLength {
		return nil, ErrInvalidLength
	}

	statuses := make([]models.TileStatus, WordLength)
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == target[i]:
			statuses[i] = models.TileCorrect
		case strings.IndexByte(target, guess[i]) >= 0:
			statuses[i] = models.TileWrongPosition
		default:
			statuses[i] = models.TileWrong
		}
	}
	return statuses, nil
}

// ScoreStrict implements classic duplicate-aware scoring: each target letter
// can satisfy at most one guess letter, exact matches claim theirs first.
func ScoreStrict(guess, target string) ([]models.TileStatus, error) {
	guess = strings.ToUpper(guess)
	target = strings.ToUpper(target)
	if len(guess) != WordLength || len(target) != WordLength {
		return nil, ErrInvalidLength
	}

	statuses := make([]models.TileStatus, WordLength)
	remaining := []byte(target)

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			statuses[i] = models.TileCorrect
			remaining[i] = ' '
		}
	}

	for i := 0; i < WordLength; i++ {
		if statuses[i] != "" {
			continue
		}
		statuses[i] = models.TileWrong
		for j := 0; j < WordLength; j++ {
			if remaining[j] == guess[i] {
				statuses[i] = models.TileWrongPosition
				remaining[j] = ' '
				break
			}
		}
	}
	return statuses, nil
}

// ScorerFor returns the scoring rule to use. Strict scoring is opt-in so that
// existing games keep their historical behaviour.
func ScorerFor(strict bool) ScoreFunc {
	if strict {
		return ScoreStrict
	}
	return Score
}
