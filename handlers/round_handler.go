package handlers

import (
	"net/http"

	"github.com/hackovate/judging-portal/services"
)

type RoundHandler struct {
	roundService services.RoundService
}

func NewRoundHandler(roundService services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: roundService}
}

func (h *RoundHandler) List(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.roundService.ListRounds(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateRoundInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if err := validateStruct(input); err != nil {
		badRequestResponse(w, err)
		return
	}

	round, err := h.roundService.CreateRound(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{"id": round.ID})
}

func (h *RoundHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	roundID, err := getIDFromURL(r, "roundID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	var input struct {
		IsActive bool `json:"is_active"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.roundService.SetActiveRound(r.Context(), roundID, input.IsActive); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"success": true})
}
