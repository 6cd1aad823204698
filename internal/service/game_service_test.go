package service

import (
	"context"
	"errors"
	"testing"

	"github.com/justjelku/wordle-clone/internal/game"
	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/repository"
)

type openDict struct{}

func (openDict) IsValidWord(string) bool { return true }

// newGameFixture seeds today's word so gameplay never triggers generation.
func newGameFixture(t *testing.T) (*GameService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	word := &models.DailyWord{ID: "w1", Date: models.Today(), Word: "PLANT", Category: "Nature"}
	if err := store.CreateDailyWord(word); err != nil {
		t.Fatalf("seeding daily word: %v", err)
	}

	words := NewWordService(store, nil)
	return NewGameService(store, words, openDict{}, game.Score), store
}

func TestSubmitGuessCreatesRecordOnFirstGuess(t *testing.T) {
	svc, store := newGameFixture(t)

	state, err := svc.SubmitGuess(context.Background(), "u1", "TRAIN")
	if err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}
	if state.Status != models.CompletionPlaying {
		t.Errorf("Status = %v, want playing", state.Status)
	}
	if state.GuessCount != 1 {
		t.Errorf("GuessCount = %d, want 1", state.GuessCount)
	}
	if state.Word != "" {
		t.Errorf("Word = %q, must stay hidden while playing", state.Word)
	}

	record, err := store.GetGameRecordByUserAndDate("u1", models.Today())
	if err != nil {
		t.Fatalf("GetGameRecordByUserAndDate() error = %v", err)
	}
	if record == nil {
		t.Fatal("no record persisted after first guess")
	}
	if len(record.Guesses) != 1 || record.Guesses[0] != "TRAIN" {
		t.Errorf("record.Guesses = %v, want [TRAIN]", record.Guesses)
	}
}

func TestSubmitGuessWinPersistsTerminalState(t *testing.T) {
	svc, store := newGameFixture(t)

	if _, err := svc.SubmitGuess(context.Background(), "u1", "TRAIN"); err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}
	state, err := svc.SubmitGuess(context.Background(), "u1", "PLANT")
	if err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}
	if state.Status != models.CompletionWon {
		t.Errorf("Status = %v, want won", state.Status)
	}
	if state.Word != "PLANT" {
		t.Errorf("Word = %q, want revealed PLANT on finished game", state.Word)
	}

	record, _ := store.GetGameRecordByUserAndDate("u1", models.Today())
	if record.Completed != models.CompletionWon {
		t.Errorf("record.Completed = %v, want won", record.Completed)
	}
	if record.GuessCount != 2 {
		t.Errorf("record.GuessCount = %d, want 2", record.GuessCount)
	}

	// A finished game rejects further guesses and stays unchanged
	if _, err := svc.SubmitGuess(context.Background(), "u1", "CREST"); !errors.Is(err, game.ErrNotPlaying) {
		t.Errorf("SubmitGuess() after win error = %v, want %v", err, game.ErrNotPlaying)
	}
	record, _ = store.GetGameRecordByUserAndDate("u1", models.Today())
	if record.GuessCount != 2 {
		t.Errorf("record mutated after terminal state: GuessCount = %d", record.GuessCount)
	}
}

func TestSubmitGuessLossAfterMaxGuesses(t *testing.T) {
	svc, store := newGameFixture(t)

	var state *GameState
	var err error
	for i := 0; i < game.MaxGuesses; i++ {
		state, err = svc.SubmitGuess(context.Background(), "u1", "CREST")
		if err != nil {
			t.Fatalf("guess %d: SubmitGuess() error = %v", i+1, err)
		}
	}
	if state.Status != models.CompletionLost {
		t.Errorf("Status = %v, want lost", state.Status)
	}

	record, _ := store.GetGameRecordByUserAndDate("u1", models.Today())
	if record.Completed != models.CompletionLost {
		t.Errorf("record.Completed = %v, want lost", record.Completed)
	}
}

func TestSubmitAnonymousGuess(t *testing.T) {
	svc, store := newGameFixture(t)

	// Mid-game guess: nothing persisted
	state, err := svc.SubmitAnonymousGuess(context.Background(), nil, "TRAIN")
	if err != nil {
		t.Fatalf("SubmitAnonymousGuess() error = %v", err)
	}
	if state.Status != models.CompletionPlaying {
		t.Errorf("Status = %v, want playing", state.Status)
	}
	records, _ := store.ListGameRecordsByDate(models.Today())
	if len(records) != 0 {
		t.Errorf("%d records persisted mid-game, want 0", len(records))
	}

	// Winning guess: a user-less record is stored
	state, err = svc.SubmitAnonymousGuess(context.Background(), []string{"TRAIN"}, "PLANT")
	if err != nil {
		t.Fatalf("SubmitAnonymousGuess() error = %v", err)
	}
	if state.Status != models.CompletionWon {
		t.Errorf("Status = %v, want won", state.Status)
	}

	records, _ = store.ListGameRecordsByDate(models.Today())
	if len(records) != 1 {
		t.Fatalf("%d records persisted, want 1", len(records))
	}
	if records[0].UserID != "" {
		t.Errorf("record.UserID = %q, want anonymous", records[0].UserID)
	}
	if records[0].GuessCount != 2 {
		t.Errorf("record.GuessCount = %d, want 2", records[0].GuessCount)
	}
}

func TestSubmitAnonymousGuessRejectsFinishedHistory(t *testing.T) {
	svc, _ := newGameFixture(t)

	_, err := svc.SubmitAnonymousGuess(context.Background(), []string{"PLANT"}, "CREST")
	if !errors.Is(err, game.ErrNotPlaying) {
		t.Errorf("SubmitAnonymousGuess() error = %v, want %v", err, game.ErrNotPlaying)
	}
}

func TestGetStateForNewPlayer(t *testing.T) {
	svc, _ := newGameFixture(t)

	state, err := svc.GetState(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if state.Status != models.CompletionPlaying {
		t.Errorf("Status = %v, want playing", state.Status)
	}
	if state.GuessCount != 0 {
		t.Errorf("GuessCount = %d, want 0", state.GuessCount)
	}
	if len(state.Grid) != game.MaxGuesses {
		t.Errorf("grid has %d rows, want %d", len(state.Grid), game.MaxGuesses)
	}
	if len(state.Keyboard) != 0 {
		t.Errorf("keyboard has %d entries, want 0", len(state.Keyboard))
	}
}

func TestGetStateReflectsGuesses(t *testing.T) {
	svc, _ := newGameFixture(t)

	if _, err := svc.SubmitGuess(context.Background(), "u1", "TRAIN"); err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}

	state, err := svc.GetState(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if state.GuessCount != 1 {
		t.Errorf("GuessCount = %d, want 1", state.GuessCount)
	}
	if state.Grid[0][2].Status != models.TileCorrect {
		t.Errorf("grid[0][2].Status = %v, want correct", state.Grid[0][2].Status)
	}
	if state.Keyboard["A"] != models.KeyCorrect {
		t.Errorf("keyboard[A] = %v, want correct", state.Keyboard["A"])
	}
}

func TestCompletedToday(t *testing.T) {
	svc, _ := newGameFixture(t)

	done, err := svc.CompletedToday("u1")
	if err != nil {
		t.Fatalf("CompletedToday() error = %v", err)
	}
	if done {
		t.Error("CompletedToday() = true before any guess")
	}

	if _, err := svc.SubmitGuess(context.Background(), "u1", "TRAIN"); err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}
	if done, _ = svc.CompletedToday("u1"); done {
		t.Error("CompletedToday() = true mid-game")
	}

	if _, err := svc.SubmitGuess(context.Background(), "u1", "PLANT"); err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}
	if done, _ = svc.CompletedToday("u1"); !done {
		t.Error("CompletedToday() = false after winning")
	}
}
