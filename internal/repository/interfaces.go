// Package repository defines the storage contracts for the game and provides
// two implementations per store: a SQL one over internal/database and an
// in-memory one for tests and dev. Lookups that find nothing return
// (nil, nil); callers decide whether absence is an error.
package repository

import (
	"errors"

	"github.com/justjelku/wordle-clone/internal/models"
)

var (
	// ErrDuplicate reports a unique-constraint conflict: a second daily word
	// for the same date, a taken username, or a second active record for the
	// same (user, date) pair.
	ErrDuplicate = errors.New("duplicate record")

	// ErrVersionConflict reports a lost optimistic-concurrency race: the
	// record changed between read and write. Callers should re-read and
	// retry or give up.
	ErrVersionConflict = errors.New("record version conflict")
)

// UserStore persists player accounts.
type UserStore interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// DailyWordStore persists the one-word-per-date history.
type DailyWordStore interface {
	// CreateDailyWord inserts a word for its date, returning ErrDuplicate if
	// the date already has one. Combined with GetDailyWordByDate this gives
	// callers an idempotent upsert: losers of the creation race re-read the
	// winning row and discard their own candidate.
	CreateDailyWord(word *models.DailyWord) error
	GetDailyWordByDate(date string) (*models.DailyWord, error)
	ListUsedWords() ([]string, error)
}

// GameRecordStore persists per-player game sessions and outcomes.
type GameRecordStore interface {
	// CreateGameRecord inserts a new record, returning ErrDuplicate when the
	// (user, date) pair already has one.
	CreateGameRecord(record *models.GameRecord) error
	// UpdateGameRecord writes guesses/completion guarded by the record's
	// version; on success the version is bumped in place. Returns
	// ErrVersionConflict when a concurrent writer got there first.
	UpdateGameRecord(record *models.GameRecord) error
	GetGameRecordByUserAndDate(userID, date string) (*models.GameRecord, error)
	ListGameRecordsByDate(date string) ([]models.GameRecord, error)
	ListGameRecordsByUser(userID string) ([]models.GameRecord, error)
}
