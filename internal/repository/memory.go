package repository

import (
	"sync"
	"time"

	"github.com/justjelku/wordle-clone/internal/models"
)

// MemoryStore is an in-memory implementation of all three store contracts,
// selected at composition time for dev and tests. A single mutex serializes
// writers, which also gives game record updates the at-most-one-writer
// semantics the SQL stores get from versioned updates.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[string]models.User      // by id
	dailyWords map[string]models.DailyWord // by date
	records    map[string]models.GameRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]models.User),
		dailyWords: make(map[string]models.DailyWord),
		records:    make(map[string]models.GameRecord),
	}
}

// CreateUser inserts a user, rejecting duplicate usernames.
func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrDuplicate
		}
	}
	s.users[user.ID] = *user
	return nil
}

// GetUserByID retrieves a user by ID.
func (s *MemoryStore) GetUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

// GetUserByUsername retrieves a user by username.
func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// ListUsers returns all users.
func (s *MemoryStore) ListUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

// CreateDailyWord inserts a word, rejecting a second word for the same date.
func (s *MemoryStore) CreateDailyWord(word *models.DailyWord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dailyWords[word.Date]; ok {
		return ErrDuplicate
	}
	s.dailyWords[word.Date] = *word
	return nil
}

// GetDailyWordByDate retrieves the word for a date.
func (s *MemoryStore) GetDailyWordByDate(date string) (*models.DailyWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if word, ok := s.dailyWords[date]; ok {
		return &word, nil
	}
	return nil, nil
}

// ListUsedWords returns every historical daily word.
func (s *MemoryStore) ListUsedWords() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]string, 0, len(s.dailyWords))
	for _, word := range s.dailyWords {
		words = append(words, word.Word)
	}
	return words, nil
}

// CreateGameRecord inserts a record, rejecting a second one for the same
// non-anonymous (user, date) pair.
func (s *MemoryStore) CreateGameRecord(record *models.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.UserID != "" {
		for _, existing := range s.records {
			if existing.UserID == record.UserID && existing.Date == record.Date {
				return ErrDuplicate
			}
		}
	}
	s.records[record.ID] = cloneRecord(*record)
	return nil
}

// UpdateGameRecord writes the record guarded by its version.
func (s *MemoryStore) UpdateGameRecord(record *models.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[record.ID]
	if !ok || existing.Version != record.Version {
		return ErrVersionConflict
	}

	record.Version++
	record.UpdatedAt = time.Now().UTC()
	s.records[record.ID] = cloneRecord(*record)
	return nil
}

// GetGameRecordByUserAndDate retrieves a user's record for a date.
func (s *MemoryStore) GetGameRecordByUserAndDate(userID, date string) (*models.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.UserID == userID && record.Date == date {
			r := cloneRecord(record)
			return &r, nil
		}
	}
	return nil, nil
}

// ListGameRecordsByDate returns all records for a date.
func (s *MemoryStore) ListGameRecordsByDate(date string) ([]models.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []models.GameRecord
	for _, record := range s.records {
		if record.Date == date {
			records = append(records, cloneRecord(record))
		}
	}
	return records, nil
}

// ListGameRecordsByUser returns a user's full history.
func (s *MemoryStore) ListGameRecordsByUser(userID string) ([]models.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []models.GameRecord
	for _, record := range s.records {
		if record.UserID == userID {
			records = append(records, cloneRecord(record))
		}
	}
	return records, nil
}

// cloneRecord copies the record including its guess slice so callers cannot
// mutate stored state through the shared backing array.
func cloneRecord(r models.GameRecord) models.GameRecord {
	r.Guesses = append([]string(nil), r.Guesses...)
	return r
}
