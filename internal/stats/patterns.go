package stats

import (
	"sort"

	"github.com/justjelku/wordle-clone/internal/models"
)

// DefaultPatternLimit is how many winning patterns are shown per day.
const DefaultPatternLimit = 3

// TopPatterns picks the fastest winning guess sequences among the given
// day's records, ordered by guess count ascending. Anonymous records and
// records whose user is missing from usernames are skipped: a pattern
// without a name to show is useless for social comparison.
func TopPatterns(records []models.GameRecord, usernames map[string]string, limit int) []models.GuessPattern {
	if limit <= 0 {
		limit = DefaultPatternLimit
	}

	won := make([]models.GameRecord, 0, len(records))
	for _, r := range records {
		if r.Completed != models.CompletionWon {
			continue
		}
		if r.UserID == "" {
			continue
		}
		if _, ok := usernames[r.UserID]; !ok {
			continue
		}
		won = append(won, r)
	}

	sort.SliceStable(won, func(i, j int) bool {
		return won[i].GuessCount < won[j].GuessCount
	})

	if len(won) > limit {
		won = won[:limit]
	}

	patterns := make([]models.GuessPattern, 0, len(won))
	for _, r := range won {
		patterns = append(patterns, models.GuessPattern{
			Username:   usernames[r.UserID],
			Guesses:    r.Guesses,
			GuessCount: r.GuessCount,
		})
	}
	return patterns
}
