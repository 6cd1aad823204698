package game

import (
	"strings"

	"github.com/justjelku/wordle-clone/internal/models"
)

// AggregateKeyboard folds the full guess history into a per-letter keyboard
// state. Precedence is correct > wrong-position > wrong: once a letter has
// been placed correctly it is never downgraded by a later guess, and a
// wrong-position letter can only be upgraded. Letters never guessed are
// absent from the map and render as unused.
func AggregateKeyboard(guesses []string, target string) map[string]models.KeyStatus {
	target = strings.ToUpper(target)
	keyboard := make(map[string]models.KeyStatus)

	for _, guess := range guesses {
		guess = strings.ToUpper(guess)
		for i := 0; i < len(guess) && i < len(target); i++ {
			letter := string(guess[i])
			switch {
			case target[i] == guess[i]:
				keyboard[letter] = models.KeyCorrect
			case strings.IndexByte(target, guess[i]) >= 0:
				if keyboard[letter] != models.KeyCorrect {
					keyboard[letter] = models.KeyWrongPosition
				}
			default:
				keyboard[letter] = models.KeyWrong
			}
		}
	}
	return keyboard
}
