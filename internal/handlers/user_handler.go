package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/service"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	userService  *service.UserService
	gameService  *service.GameService
	statsService *service.StatsService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService *service.UserService, gameService *service.GameService, statsService *service.StatsService) *UserHandler {
	return &UserHandler{userService: userService, gameService: gameService, statsService: statsService}
}

type signupRequest struct {
	Username string `json:"username"`
}

type signupResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Signup creates a new account and returns the user with a player token.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	user, token, err := h.userService.Signup(req.Username)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, signupResponse{User: user, Token: token})
}

// GetByUsername looks up a user by username.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByUsername(r.PathValue("username"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// GetStats returns lifetime statistics for a user.
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetUserStats(r.PathValue("userId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

type completionResponse struct {
	Completed bool `json:"completed"`
}

// GetCompletion reports whether the user already finished today's game.
func (h *UserHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if _, err := h.userService.GetByID(userID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	done, err := h.gameService.CompletedToday(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, completionResponse{Completed: done})
}

type suggestUsernameResponse struct {
	Username string `json:"username"`
}

// SuggestUsername returns an available username suggestion.
func (h *UserHandler) SuggestUsername(w http.ResponseWriter, r *http.Request) {
	username, err := h.userService.SuggestUsername(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, suggestUsernameResponse{Username: username})
}
