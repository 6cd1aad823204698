package service

import (
	"fmt"

	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/repository"
	"github.com/justjelku/wordle-clone/internal/stats"
)

// StatsService assembles player statistics, the leaderboard and the daily top
// patterns by loading record history and delegating to the pure aggregators.
type StatsService struct {
	users   repository.UserStore
	records repository.GameRecordStore
}

// NewStatsService creates a new stats service.
func NewStatsService(users repository.UserStore, records repository.GameRecordStore) *StatsService {
	return &StatsService{users: users, records: records}
}

// GetUserStats returns lifetime statistics for the given user.
func (s *StatsService) GetUserStats(userID string) (*models.UserStats, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	records, err := s.records.ListGameRecordsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("loading game records: %w", err)
	}

	result := stats.Compute(user.Username, records)
	return &result, nil
}

// Leaderboard returns the top players ranked by win rate. A limit of zero or
// less uses the default size.
func (s *StatsService) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	users, err := s.users.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	players := make([]stats.PlayerHistory, 0, len(users))
	for _, u := range users {
		records, err := s.records.ListGameRecordsByUser(u.ID)
		if err != nil {
			return nil, fmt.Errorf("loading records for %s: %w", u.Username, err)
		}
		players = append(players, stats.PlayerHistory{Username: u.Username, Records: records})
	}

	return stats.Rank(players, limit), nil
}

// TopPatterns returns the fastest winning guess sequences for a date.
func (s *StatsService) TopPatterns(date string, limit int) ([]models.GuessPattern, error) {
	records, err := s.records.ListGameRecordsByDate(date)
	if err != nil {
		return nil, fmt.Errorf("loading records for %s: %w", date, err)
	}

	users, err := s.users.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	usernames := make(map[string]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	return stats.TopPatterns(records, usernames, limit), nil
}
