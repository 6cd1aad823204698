package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/justjelku/wordle-clone/internal/ai"
	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/repository"
)

// generateAttempts is how many times a fresh word is requested from the model
// before giving up.
const generateAttempts = 3

// WordGenerator produces word candidates; satisfied by ai.Client.
type WordGenerator interface {
	GenerateWord(ctx context.Context, category models.Category, excludeList []string) (*ai.WordCandidate, error)
}

// WordService owns daily word selection: exactly one word per calendar date,
// generated on demand and never repeated.
type WordService struct {
	words     repository.DailyWordStore
	generator WordGenerator
}

// NewWordService creates a new word service.
func NewWordService(words repository.DailyWordStore, generator WordGenerator) *WordService {
	return &WordService{words: words, generator: generator}
}

// EnsureDailyWord returns the word for the given date, generating and storing
// one if the date has none yet. Concurrent callers may both reach generation;
// the store's unique date constraint picks a single winner and losers re-read
// the winning row, so every caller observes the same word.
func (s *WordService) EnsureDailyWord(ctx context.Context, date string) (*models.DailyWord, error) {
	existing, err := s.words.GetDailyWordByDate(date)
	if err != nil {
		return nil, fmt.Errorf("looking up daily word: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	category := models.Categories[rand.Intn(len(models.Categories))]
	return s.GenerateForDate(ctx, date, category)
}

// GenerateForDate generates and stores a word for the given date and category.
// If the date already has a word, that word is returned unchanged.
func (s *WordService) GenerateForDate(ctx context.Context, date string, category models.Category) (*models.DailyWord, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("%w: no generator configured", ErrGenerationFailed)
	}

	used, err := s.words.ListUsedWords()
	if err != nil {
		return nil, fmt.Errorf("listing used words: %w", err)
	}

	var candidate *ai.WordCandidate
	var lastErr error
	for attempt := 1; attempt <= generateAttempts; attempt++ {
		candidate, lastErr = s.generator.GenerateWord(ctx, category, used)
		if lastErr == nil {
			break
		}
		log.Printf("word generation attempt %d/%d failed: %v", attempt, generateAttempts, lastErr)
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
	}

	word := &models.DailyWord{
		ID:       uuid.New().String(),
		Date:     date,
		Word:     strings.ToUpper(candidate.Word),
		Category: category,
	}
	if err := s.words.CreateDailyWord(word); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Another caller stored a word for this date first; use theirs.
			winner, rerr := s.words.GetDailyWordByDate(date)
			if rerr != nil {
				return nil, fmt.Errorf("re-reading daily word after conflict: %w", rerr)
			}
			if winner == nil {
				return nil, ErrConflict
			}
			return winner, nil
		}
		return nil, fmt.Errorf("storing daily word: %w", err)
	}

	log.Printf("generated daily word for %s (category %s)", date, category)
	return word, nil
}

// UsedWords returns every word that has ever been a daily word.
func (s *WordService) UsedWords() ([]string, error) {
	return s.words.ListUsedWords()
}
