// Package stats computes lifetime player statistics, the global leaderboard
// and the daily top patterns from game record history. Everything here is
// pure: callers load the records, this package only folds them.
package stats

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/justjelku/wordle-clone/internal/models"
)

// Compute aggregates one player's full record history into lifetime stats.
// A player with no records gets all-zero stats; that is a valid result, not
// an error. Average and best guesses consider won games only.
func Compute(username string, records []models.GameRecord) models.UserStats {
	stats := models.UserStats{
		Username:   username,
		TotalGames: len(records),
		FoundWords: []models.FoundWord{},
	}

	won := lo.Filter(records, func(r models.GameRecord, _ int) bool {
		return r.Completed == models.CompletionWon
	})
	stats.GamesWon = len(won)

	if len(won) > 0 {
		total := 0
		best := won[0].GuessCount
		for _, r := range won {
			total += r.GuessCount
			if r.GuessCount < best {
				best = r.GuessCount
			}
		}
		stats.AverageGuesses = round1(float64(total) / float64(len(won)))
		stats.BestGuess = best
	}

	stats.CurrentStreak, stats.MaxStreak = Streaks(records)

	for _, r := range won {
		stats.FoundWords = append(stats.FoundWords, models.FoundWord{
			Word:       r.Word,
			Category:   r.Category,
			Date:       r.Date,
			GuessCount: r.GuessCount,
		})
	}
	return stats
}

// Streaks returns the current and maximum win streaks over the record
// history. Records are ordered by date ascending (date keys sort
// lexicographically); the current streak counts consecutive wins from the
// most recent record backwards and breaks at the first non-win.
func Streaks(records []models.GameRecord) (current, max int) {
	sorted := make([]models.GameRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	run := 0
	for _, r := range sorted {
		if r.Completed == models.CompletionWon {
			run++
			if run > max {
				max = run
			}
		} else {
			run = 0
		}
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Completed != models.CompletionWon {
			break
		}
		current++
	}
	return current, max
}

// round1 rounds to one decimal place, matching the display precision the
// client expects.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
