// Package handlers exposes the JSON API and its middleware.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/justjelku/wordle-clone/internal/game"
	"github.com/justjelku/wordle-clone/internal/service"
	"github.com/justjelku/wordle-clone/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}
	respondWithJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError maps known service and game errors to HTTP statuses,
// falling back to a 500 for everything unexpected.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.Is(err, service.ErrNotFound):
		respondWithJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, service.ErrUsernameTaken):
		respondWithJSON(w, http.StatusConflict, errorResponse{Error: "username already taken"})
	case errors.Is(err, service.ErrConflict):
		respondWithJSON(w, http.StatusConflict, errorResponse{Error: "please retry"})
	case errors.Is(err, service.ErrGenerationFailed):
		respondWithError(w, http.StatusBadGateway, "word generation unavailable", err)
	case errors.Is(err, game.ErrInvalidLength), errors.Is(err, game.ErrUnknownWord):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, game.ErrNotPlaying):
		respondWithJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error", err)
	}
}
