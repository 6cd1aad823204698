package handlers

import (
	"net/http"
	"strconv"

	"github.com/justjelku/wordle-clone/internal/service"
	"github.com/justjelku/wordle-clone/internal/validation"
)

// StatsHandler handles leaderboard and top-pattern endpoints.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetLeaderboard returns the ranked leaderboard. The optional limit query
// parameter caps the number of rows.
func (h *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
		limit = n
	}

	entries, err := h.statsService.Leaderboard(limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// GetTopPatterns returns the fastest winning guess sequences for a date.
func (h *StatsHandler) GetTopPatterns(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if err := validation.ValidateDate(date); err != nil {
		respondWithServiceError(w, err)
		return
	}

	patterns, err := h.statsService.TopPatterns(date, 0)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patterns)
}
