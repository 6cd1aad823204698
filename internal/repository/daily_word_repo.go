package repository

import (
	"database/sql"
	"fmt"

	"github.com/justjelku/wordle-clone/internal/database"
	"github.com/justjelku/wordle-clone/internal/models"
)

// DailyWordRepository handles database operations for daily words
type DailyWordRepository struct {
	db *database.DB
}

// NewDailyWordRepository creates a new daily word repository
func NewDailyWordRepository(db *database.DB) *DailyWordRepository {
	return &DailyWordRepository{db: db}
}

// CreateDailyWord inserts the word for a date. The unique index on date makes
// this the serialization point for the check-then-generate race: the second
// writer gets ErrDuplicate and must re-read the winning row.
func (r *DailyWordRepository) CreateDailyWord(word *models.DailyWord) error {
	query := `
		INSERT INTO daily_words (id, date, word, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, word.ID, word.Date, word.Word, string(word.Category), word.CreatedAt)
	if err != nil {
		if r.db.Dialect.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create daily word: %w", err)
	}
	return nil
}

// GetDailyWordByDate retrieves the word for a date
func (r *DailyWordRepository) GetDailyWordByDate(date string) (*models.DailyWord, error) {
	query := `
		SELECT id, date, word, category, created_at
		FROM daily_words
		WHERE date = ?
	`
	word := &models.DailyWord{}
	var category string
	err := r.db.QueryRow(query, date).Scan(&word.ID, &word.Date, &word.Word, &category, &word.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily word: %w", err)
	}
	word.Category = models.Category(category)
	return word, nil
}

// ListUsedWords returns every word that has ever been a daily word, for
// generation dedup.
func (r *DailyWordRepository) ListUsedWords() ([]string, error) {
	query := "SELECT word FROM daily_words ORDER BY date"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query used words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan used word: %w", err)
		}
		words = append(words, word)
	}
	return words, rows.Err()
}
