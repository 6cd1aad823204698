package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/justjelku/wordle-clone/internal/database"
	"github.com/justjelku/wordle-clone/internal/models"
)

// GameRecordRepository handles database operations for game records.
// Guess histories are stored as a JSON array in a text column.
type GameRecordRepository struct {
	db *database.DB
}

// NewGameRecordRepository creates a new game record repository
func NewGameRecordRepository(db *database.DB) *GameRecordRepository {
	return &GameRecordRepository{db: db}
}

const gameRecordColumns = "id, user_id, date, word, category, guesses, completed, guess_count, version, created_at, updated_at"

// CreateGameRecord inserts a new record. The (user_id, date) unique index
// enforces the one-session-per-user-per-day invariant at the store boundary.
func (r *GameRecordRepository) CreateGameRecord(record *models.GameRecord) error {
	guesses, err := json.Marshal(record.Guesses)
	if err != nil {
		return fmt.Errorf("failed to encode guesses: %w", err)
	}

	query := `
		INSERT INTO game_records (id, user_id, date, word, category, guesses, completed, guess_count, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		record.ID,
		nullableString(record.UserID),
		record.Date,
		record.Word,
		string(record.Category),
		string(guesses),
		string(record.Completed),
		record.GuessCount,
		record.Version,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		if r.db.Dialect.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create game record: %w", err)
	}
	return nil
}

// UpdateGameRecord writes the record guarded by its version. Zero rows
// affected means a concurrent writer won the race.
func (r *GameRecordRepository) UpdateGameRecord(record *models.GameRecord) error {
	guesses, err := json.Marshal(record.Guesses)
	if err != nil {
		return fmt.Errorf("failed to encode guesses: %w", err)
	}

	now := time.Now().UTC()
	query := `
		UPDATE game_records
		SET guesses = ?, completed = ?, guess_count = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?
	`
	result, err := r.db.Exec(query,
		string(guesses),
		string(record.Completed),
		record.GuessCount,
		now,
		record.ID,
		record.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update game record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	record.Version++
	record.UpdatedAt = now
	return nil
}

// GetGameRecordByUserAndDate retrieves a user's record for a date
func (r *GameRecordRepository) GetGameRecordByUserAndDate(userID, date string) (*models.GameRecord, error) {
	query := `
		SELECT ` + gameRecordColumns + `
		FROM game_records
		WHERE user_id = ? AND date = ?
	`
	return r.scanGameRecord(r.db.QueryRow(query, userID, date))
}

// ListGameRecordsByDate retrieves all records for a date
func (r *GameRecordRepository) ListGameRecordsByDate(date string) ([]models.GameRecord, error) {
	query := `
		SELECT ` + gameRecordColumns + `
		FROM game_records
		WHERE date = ?
	`
	return r.queryGameRecords(query, date)
}

// ListGameRecordsByUser retrieves a user's full history
func (r *GameRecordRepository) ListGameRecordsByUser(userID string) ([]models.GameRecord, error) {
	query := `
		SELECT ` + gameRecordColumns + `
		FROM game_records
		WHERE user_id = ?
		ORDER BY date
	`
	return r.queryGameRecords(query, userID)
}

func (r *GameRecordRepository) queryGameRecords(query string, args ...interface{}) ([]models.GameRecord, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query game records: %w", err)
	}
	defer rows.Close()

	var records []models.GameRecord
	for rows.Next() {
		record, err := scanGameRecordRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (r *GameRecordRepository) scanGameRecord(row *sql.Row) (*models.GameRecord, error) {
	record, err := scanGameRecordRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return record, err
}

func scanGameRecordRow(scan func(dest ...interface{}) error) (*models.GameRecord, error) {
	record := &models.GameRecord{}
	var userID sql.NullString
	var category, guesses, completed string

	err := scan(
		&record.ID,
		&userID,
		&record.Date,
		&record.Word,
		&category,
		&guesses,
		&completed,
		&record.GuessCount,
		&record.Version,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan game record: %w", err)
	}

	record.UserID = userID.String
	record.Category = models.Category(category)
	record.Completed = models.Completion(completed)
	if err := json.Unmarshal([]byte(guesses), &record.Guesses); err != nil {
		return nil, fmt.Errorf("failed to decode guesses: %w", err)
	}
	return record, nil
}

// nullableString maps "" to SQL NULL so anonymous records don't collide on
// the (user_id, date) unique index.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
