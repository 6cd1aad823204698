package stats

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/justjelku/wordle-clone/internal/models"
)

// DefaultLeaderboardLimit caps the leaderboard when the caller does not ask
// for a specific size.
const DefaultLeaderboardLimit = 10

// PlayerHistory pairs a player with their full record history.
type PlayerHistory struct {
	Username string
	Records  []models.GameRecord
}

// Rank orders players by win rate descending, then average guesses ascending
// (fewer is better), then total games descending, truncated to limit.
// Players with zero games are excluded entirely.
func Rank(players []PlayerHistory, limit int) []models.LeaderboardEntry {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	entries := make([]models.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		if len(p.Records) == 0 {
			continue
		}

		won := lo.Filter(p.Records, func(r models.GameRecord, _ int) bool {
			return r.Completed == models.CompletionWon
		})

		entry := models.LeaderboardEntry{
			Username:   p.Username,
			TotalGames: len(p.Records),
			GamesWon:   len(won),
			WinRate:    int(math.Round(float64(len(won)) / float64(len(p.Records)) * 100)),
		}
		if len(won) > 0 {
			total := lo.SumBy(won, func(r models.GameRecord) int { return r.GuessCount })
			entry.AverageGuesses = round1(float64(total) / float64(len(won)))
		}
		entry.CurrentStreak, _ = Streaks(p.Records)

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].WinRate != entries[j].WinRate {
			return entries[i].WinRate > entries[j].WinRate
		}
		if entries[i].AverageGuesses != entries[j].AverageGuesses {
			return entries[i].AverageGuesses < entries[j].AverageGuesses
		}
		return entries[i].TotalGames > entries[j].TotalGames
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
