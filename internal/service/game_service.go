package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justjelku/wordle-clone/internal/game"
	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/repository"
)

// GameState is the client-facing view of one session: the scored tile grid,
// the aggregated keyboard and the lifecycle status. The target word is only
// revealed once the game is over.
type GameState struct {
	Date       string                      `json:"date"`
	Category   models.Category             `json:"category"`
	Status     models.Completion           `json:"status"`
	Guesses    []string                    `json:"guesses"`
	GuessCount int                         `json:"guessCount"`
	Grid       [][]models.TileState        `json:"grid"`
	Keyboard   map[string]models.KeyStatus `json:"keyboard"`
	Word       string                      `json:"word,omitempty"`
}

// GameService orchestrates play: it resolves the day's word, rebuilds the
// player's session from its persisted record, applies the guess and persists
// the result. Signed-in players get server-side state keyed by (user, date);
// anonymous players keep their guess history client-side and only their
// finished games are recorded.
type GameService struct {
	records repository.GameRecordStore
	words   *WordService
	dict    game.Dictionary
	score   game.ScoreFunc
}

// NewGameService creates a new game service.
func NewGameService(records repository.GameRecordStore, words *WordService, dict game.Dictionary, score game.ScoreFunc) *GameService {
	return &GameService{records: records, words: words, dict: dict, score: score}
}

// SubmitGuess applies one guess to the signed-in player's session for today,
// creating the record on the first guess. A lost version race is retried once
// against the fresh record before surfacing ErrConflict.
func (s *GameService) SubmitGuess(ctx context.Context, userID, guess string) (*GameState, error) {
	word, err := s.words.EnsureDailyWord(ctx, models.Today())
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		record, err := s.findOrCreateRecord(userID, word)
		if err != nil {
			return nil, err
		}

		sess := game.Resume(word.Word, record.Guesses, record.Completed)
		if err := sess.SubmitGuess(guess, s.dict); err != nil {
			return nil, err
		}

		record.Guesses = sess.Guesses
		record.Completed = sess.Status
		record.GuessCount = sess.GuessCount()
		record.UpdatedAt = time.Now().UTC()

		if err := s.records.UpdateGameRecord(record); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				continue
			}
			return nil, fmt.Errorf("updating game record: %w", err)
		}
		return s.buildState(word, sess), nil
	}
	return nil, ErrConflict
}

// SubmitAnonymousGuess scores a guess against today's word given the client's
// prior guesses. Nothing is stored until the game ends; a finished game is
// recorded without a user so it counts toward daily activity but never toward
// any player's stats.
func (s *GameService) SubmitAnonymousGuess(ctx context.Context, prior []string, guess string) (*GameState, error) {
	word, err := s.words.EnsureDailyWord(ctx, models.Today())
	if err != nil {
		return nil, err
	}

	history := make([]string, len(prior))
	for i, g := range prior {
		history[i] = strings.ToUpper(strings.TrimSpace(g))
	}
	sess := game.Resume(word.Word, history, statusOf(history, word.Word))
	if err := sess.SubmitGuess(guess, s.dict); err != nil {
		return nil, err
	}

	if sess.IsTerminal() {
		now := time.Now().UTC()
		record := &models.GameRecord{
			ID:         uuid.New().String(),
			Date:       word.Date,
			Word:       word.Word,
			Category:   word.Category,
			Guesses:    sess.Guesses,
			Completed:  sess.Status,
			GuessCount: sess.GuessCount(),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.records.CreateGameRecord(record); err != nil {
			return nil, fmt.Errorf("recording anonymous game: %w", err)
		}
	}
	return s.buildState(word, sess), nil
}

// GetState returns the signed-in player's session state for today. A player
// who has not guessed yet gets an empty playing state.
func (s *GameService) GetState(ctx context.Context, userID string) (*GameState, error) {
	word, err := s.words.EnsureDailyWord(ctx, models.Today())
	if err != nil {
		return nil, err
	}

	record, err := s.records.GetGameRecordByUserAndDate(userID, word.Date)
	if err != nil {
		return nil, fmt.Errorf("looking up game record: %w", err)
	}

	sess := game.NewSession(word.Word)
	if record != nil {
		sess = game.Resume(word.Word, record.Guesses, record.Completed)
	}
	return s.buildState(word, sess), nil
}

// CompletedToday reports whether the player already finished today's game.
func (s *GameService) CompletedToday(userID string) (bool, error) {
	record, err := s.records.GetGameRecordByUserAndDate(userID, models.Today())
	if err != nil {
		return false, fmt.Errorf("looking up game record: %w", err)
	}
	return record != nil && record.IsTerminal(), nil
}

func (s *GameService) findOrCreateRecord(userID string, word *models.DailyWord) (*models.GameRecord, error) {
	record, err := s.records.GetGameRecordByUserAndDate(userID, word.Date)
	if err != nil {
		return nil, fmt.Errorf("looking up game record: %w", err)
	}
	if record != nil {
		return record, nil
	}

	now := time.Now().UTC()
	record = &models.GameRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      word.Date,
		Word:      word.Word,
		Category:  word.Category,
		Guesses:   []string{},
		Completed: models.CompletionPlaying,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.records.CreateGameRecord(record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Raced another first guess for the same player; use the winner.
			record, err = s.records.GetGameRecordByUserAndDate(userID, word.Date)
			if err != nil {
				return nil, fmt.Errorf("re-reading game record after conflict: %w", err)
			}
			if record == nil {
				return nil, ErrConflict
			}
			return record, nil
		}
		return nil, fmt.Errorf("creating game record: %w", err)
	}
	return record, nil
}

func (s *GameService) buildState(word *models.DailyWord, sess *game.Session) *GameState {
	state := &GameState{
		Date:       word.Date,
		Category:   word.Category,
		Status:     sess.Status,
		Guesses:    sess.Guesses,
		GuessCount: sess.GuessCount(),
		Grid:       game.BuildGrid(sess.Guesses, sess.Buffer, word.Word, s.score),
		Keyboard:   game.AggregateKeyboard(sess.Guesses, word.Word),
	}
	if state.Guesses == nil {
		state.Guesses = []string{}
	}
	if sess.IsTerminal() {
		state.Word = word.Word
	}
	return state
}

// statusOf derives the lifecycle state implied by a guess history, used to
// rebuild anonymous sessions from client-held guesses.
func statusOf(guesses []string, target string) models.Completion {
	for _, g := range guesses {
		if g == target {
			return models.CompletionWon
		}
	}
	if len(guesses) >= game.MaxGuesses {
		return models.CompletionLost
	}
	return models.CompletionPlaying
}
