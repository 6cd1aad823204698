package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/justjelku/wordle-clone/internal/game"
	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/repository"
	"github.com/justjelku/wordle-clone/internal/security"
	"github.com/justjelku/wordle-clone/internal/service"
	"github.com/justjelku/wordle-clone/internal/words"
)

// newTestServer wires the full API against an in-memory store with today's
// word pre-seeded, mirroring the composition in cmd/server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := repository.NewMemoryStore()
	if err := store.CreateDailyWord(&models.DailyWord{
		ID: "w1", Date: models.Today(), Word: "PLANT", Category: "Nature",
	}); err != nil {
		t.Fatalf("seeding daily word: %v", err)
	}

	dictionary := words.NewDictionary()
	tokens := security.NewTokenManager("test-secret", time.Hour)
	rateLimiter := security.NewRateLimiter(1000, time.Minute)

	wordService := service.NewWordService(store, nil)
	gameService := service.NewGameService(store, wordService, dictionary, game.Score)
	statsService := service.NewStatsService(store, store)
	userService := service.NewUserService(store, nil, tokens)

	middleware := NewMiddleware(rateLimiter, tokens)
	wordHandler := NewWordHandler(wordService, gameService, dictionary)
	userHandler := NewUserHandler(userService, gameService, statsService)
	gameHandler := NewGameHandler(gameService)
	statsHandler := NewStatsHandler(statsService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/daily-word", middleware.WithPlayer(wordHandler.GetDailyWord))
	mux.HandleFunc("POST /api/validate-word", wordHandler.ValidateWord)
	mux.HandleFunc("POST /api/users", userHandler.Signup)
	mux.HandleFunc("GET /api/users/by-username/{username}", userHandler.GetByUsername)
	mux.HandleFunc("GET /api/users/{userId}/stats", userHandler.GetStats)
	mux.HandleFunc("GET /api/users/{userId}/completion", userHandler.GetCompletion)
	mux.HandleFunc("POST /api/game/guess", middleware.WithPlayer(gameHandler.SubmitGuess))
	mux.HandleFunc("GET /api/game/state", middleware.WithPlayer(gameHandler.GetState))
	mux.HandleFunc("GET /api/leaderboard", statsHandler.GetLeaderboard)
	mux.HandleFunc("GET /api/top-patterns/{date}", statsHandler.GetTopPatterns)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body interface{}, token string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestSignupAndAuthenticatedPlay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/users", map[string]string{"username": "WordWhiz"}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var signup struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	decodeBody(t, resp, &signup)
	if signup.Token == "" {
		t.Fatal("signup returned no token")
	}

	// Guess with the token: state is persisted server-side
	resp = postJSON(t, server.URL+"/api/game/guess", map[string]string{"guess": "TRAIN"}, signup.Token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guess status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var state service.GameState
	decodeBody(t, resp, &state)
	if state.GuessCount != 1 || state.Status != models.CompletionPlaying {
		t.Errorf("state = %d guesses / %s, want 1 / playing", state.GuessCount, state.Status)
	}

	// Winning guess finishes the game and reveals the word
	resp = postJSON(t, server.URL+"/api/game/guess", map[string]string{"guess": "PLANT"}, signup.Token)
	decodeBody(t, resp, &state)
	if state.Status != models.CompletionWon {
		t.Errorf("Status = %s, want won", state.Status)
	}
	if state.Word != "PLANT" {
		t.Errorf("Word = %q, want PLANT revealed", state.Word)
	}

	// Completion flag flips
	resp, err := http.Get(server.URL + "/api/users/" + signup.User.ID + "/completion")
	if err != nil {
		t.Fatalf("completion request failed: %v", err)
	}
	var completion struct {
		Completed bool `json:"completed"`
	}
	decodeBody(t, resp, &completion)
	if !completion.Completed {
		t.Error("completion = false after finishing the game")
	}

	// Stats reflect the win
	resp, err = http.Get(server.URL + "/api/users/" + signup.User.ID + "/stats")
	if err != nil {
		t.Fatalf("stats request failed: %v", err)
	}
	var stats models.UserStats
	decodeBody(t, resp, &stats)
	if stats.GamesWon != 1 || stats.TotalGames != 1 {
		t.Errorf("stats = %d/%d, want 1 won of 1", stats.GamesWon, stats.TotalGames)
	}
}

func TestAnonymousGuessFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/game/guess", map[string]interface{}{"guess": "TRAIN"}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guess status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var state service.GameState
	decodeBody(t, resp, &state)
	if state.GuessCount != 1 {
		t.Errorf("GuessCount = %d, want 1", state.GuessCount)
	}

	resp = postJSON(t, server.URL+"/api/game/guess", map[string]interface{}{
		"guess":   "PLANT",
		"guesses": []string{"TRAIN"},
	}, "")
	decodeBody(t, resp, &state)
	if state.Status != models.CompletionWon {
		t.Errorf("Status = %s, want won", state.Status)
	}
}

func TestGuessValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server := newTestServer(t)

	tests := []struct {
		name       string
		guess      string
		wantStatus int
	}{
		{name: "too short", guess: "CAT", wantStatus: http.StatusBadRequest},
		{name: "not a word", guess: "ZZZZZ", wantStatus: http.StatusBadRequest},
		{name: "valid word", guess: "ABOUT", wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/game/guess", map[string]string{"guess": tt.guess}, "")
			resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/game/guess", map[string]string{"guess": "TRAIN"}, "bogus-token")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestDailyWordHidesWordMidGame(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/daily-word")
	if err != nil {
		t.Fatalf("daily-word request failed: %v", err)
	}
	var daily struct {
		Date     string `json:"date"`
		Category string `json:"category"`
		Word     string `json:"word"`
	}
	decodeBody(t, resp, &daily)
	if daily.Date != models.Today() {
		t.Errorf("date = %q, want today", daily.Date)
	}
	if daily.Category != "Nature" {
		t.Errorf("category = %q, want Nature", daily.Category)
	}
	if daily.Word != "" {
		t.Errorf("word = %q, must not leak before the game ends", daily.Word)
	}
}

func TestValidateWordEndpoint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/validate-word", map[string]string{"word": "about"}, "")
	var result struct {
		Word  string `json:"word"`
		Valid bool   `json:"valid"`
	}
	decodeBody(t, resp, &result)
	if !result.Valid || result.Word != "ABOUT" {
		t.Errorf("result = %+v, want valid ABOUT", result)
	}
}

func TestTopPatternsRejectsBadDate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/top-patterns/not-a-date")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
