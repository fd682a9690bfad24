package handlers

import (
	"net/http"

	"github.com/hackovate/judging-portal/services"
)

type EvaluationHandler struct {
	evaluationService services.EvaluationService
}

func NewEvaluationHandler(evaluationService services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.evaluationService.ListEvaluations(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluations)
}

// Submit handles POST /api/evaluations. Resubmitting for the same
// (team, round, evaluator) triple overwrites the earlier row, so the
// returned id may belong to a pre-existing evaluation.
func (h *EvaluationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input services.SubmitEvaluationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if err := validateStruct(input); err != nil {
		badRequestResponse(w, err)
		return
	}

	evaluation, err := h.evaluationService.Submit(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{"id": evaluation.ID})
}

func (h *EvaluationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "evaluationID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	var input services.UpdateEvaluationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.evaluationService.Update(r.Context(), id, input); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"success": true})
}

// Delete validates the id before touching the store: a malformed id is a
// 400, a well-formed id with no row is a 404.
func (h *EvaluationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "evaluationID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.evaluationService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"success": true})
}
