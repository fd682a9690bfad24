package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hackovate/judging-portal/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

func (h *StandingsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	var roundID *int
	if raw := r.URL.Query().Get("round_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			badRequestResponse(w, errors.New("round_id must be a positive integer"))
			return
		}
		roundID = &id
	}

	limit := services.DefaultLeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequestResponse(w, errors.New("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.standingsService.Leaderboard(r.Context(), roundID, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *StandingsHandler) RoundAverages(w http.ResponseWriter, r *http.Request) {
	averages, err := h.standingsService.RoundAverages(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, averages)
}

func (h *StandingsHandler) ProblemStatementDistribution(w http.ResponseWriter, r *http.Request) {
	counts, err := h.standingsService.ProblemStatementDistribution(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
