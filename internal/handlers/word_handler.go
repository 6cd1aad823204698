package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/service"
	"github.com/justjelku/wordle-clone/internal/validation"
	"github.com/justjelku/wordle-clone/internal/words"
)

// WordHandler handles daily word and dictionary endpoints.
type WordHandler struct {
	wordService *service.WordService
	gameService *service.GameService
	dictionary  *words.Dictionary
}

// NewWordHandler creates a new word handler.
func NewWordHandler(wordService *service.WordService, gameService *service.GameService, dictionary *words.Dictionary) *WordHandler {
	return &WordHandler{wordService: wordService, gameService: gameService, dictionary: dictionary}
}

type dailyWordResponse struct {
	Date     string          `json:"date"`
	Category models.Category `json:"category"`
	Word     string          `json:"word,omitempty"`
}

// GetDailyWord returns today's word metadata, generating the word if the day
// has none yet. The word itself is only included for players who already
// finished today's game.
func (h *WordHandler) GetDailyWord(w http.ResponseWriter, r *http.Request) {
	word, err := h.wordService.EnsureDailyWord(r.Context(), models.Today())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	resp := dailyWordResponse{Date: word.Date, Category: word.Category}
	if userID := PlayerID(r); userID != "" {
		done, err := h.gameService.CompletedToday(userID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		if done {
			resp.Word = word.Word
		}
	}
	respondWithJSON(w, http.StatusOK, resp)
}

type generateWordRequest struct {
	Category models.Category `json:"category"`
	Date     string          `json:"date,omitempty"`
}

// GenerateWord manually generates a word for a date (today by default). Meant
// for development and operations; rate-limited at the router.
func (h *WordHandler) GenerateWord(w http.ResponseWriter, r *http.Request) {
	var req generateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Category == "" {
		respondWithError(w, http.StatusBadRequest, "category is required", nil)
		return
	}
	if !models.IsValidCategory(req.Category) {
		respondWithError(w, http.StatusBadRequest, "unknown category", nil)
		return
	}
	date := req.Date
	if date == "" {
		date = models.Today()
	} else if err := validation.ValidateDate(date); err != nil {
		respondWithServiceError(w, err)
		return
	}

	word, err := h.wordService.GenerateForDate(r.Context(), date, req.Category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, word)
}

type validateWordRequest struct {
	Word string `json:"word"`
}

type validateWordResponse struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// ValidateWord checks a word against the dictionary.
func (h *WordHandler) ValidateWord(w http.ResponseWriter, r *http.Request) {
	var req validateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	word := strings.ToUpper(strings.TrimSpace(req.Word))
	respondWithJSON(w, http.StatusOK, validateWordResponse{
		Word:  word,
		Valid: h.dictionary.IsValidWord(word),
	})
}
