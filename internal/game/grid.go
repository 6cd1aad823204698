package game

import (
	"strings"

	"github.com/justjelku/wordle-clone/internal/models"
)

// BuildGrid derives the full MaxGuesses x WordLength tile grid from committed
// guesses plus the uncommitted buffer row. The grid is a pure view: it is
// recomputed on every request and never stored.
func BuildGrid(guesses []string, buffer, target string, score ScoreFunc) [][]models.TileState {
	grid := make([][]models.TileState, MaxGuesses)
	for row := range grid {
		grid[row] = make([]models.TileState, WordLength)
		for col := range grid[row] {
			grid[row][col] = models.TileState{Status: models.TileEmpty}
		}
	}

	for row, guess := range guesses {
		if row >= MaxGuesses {
			break
		}
		statuses, err := score(guess, target)
		if err != nil {
			continue
		}
		guess = strings.ToUpper(guess)
		for col := 0; col < WordLength; col++ {
			grid[row][col] = models.TileState{
				Letter: string(guess[col]),
				Status: statuses[col],
			}
		}
	}

	if row := len(guesses); row < MaxGuesses && buffer != "" {
		buffer = strings.ToUpper(buffer)
		for col := 0; col < len(buffer) && col < WordLength; col++ {
			grid[row][col] = models.TileState{
				Letter: string(buffer[col]),
				Status: models.TileFilled,
			}
		}
	}
	return grid
}
