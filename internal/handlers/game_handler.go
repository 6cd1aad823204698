package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/justjelku/wordle-clone/internal/service"
	"github.com/justjelku/wordle-clone/internal/validation"
)

// GameHandler handles gameplay endpoints.
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new game handler.
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type guessRequest struct {
	Guess string `json:"guess"`
	// Guesses carries the client-held history for anonymous play; it is
	// ignored for authenticated players, whose history lives server-side.
	Guesses []string `json:"guesses,omitempty"`
}

// SubmitGuess applies one guess to today's session. Authenticated players play
// against their persisted record; anonymous players submit their prior guesses
// with each request.
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := validation.ValidateGuess(req.Guess); err != nil {
		respondWithServiceError(w, err)
		return
	}

	var state *service.GameState
	var err error
	if userID := PlayerID(r); userID != "" {
		state, err = h.gameService.SubmitGuess(r.Context(), userID, req.Guess)
	} else {
		state, err = h.gameService.SubmitAnonymousGuess(r.Context(), req.Guesses, req.Guess)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

// GetState returns the authenticated player's session state for today.
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	userID := PlayerID(r)
	if userID == "" {
		respondWithError(w, http.StatusUnauthorized, "player token required", nil)
		return
	}

	state, err := h.gameService.GetState(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}
