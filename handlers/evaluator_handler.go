package handlers

import (
	"net/http"

	"github.com/hackovate/judging-portal/services"
)

type EvaluatorHandler struct {
	evaluatorService services.EvaluatorService
}

func NewEvaluatorHandler(evaluatorService services.EvaluatorService) *EvaluatorHandler {
	return &EvaluatorHandler{evaluatorService: evaluatorService}
}

func (h *EvaluatorHandler) List(w http.ResponseWriter, r *http.Request) {
	evaluators, err := h.evaluatorService.ListEvaluators(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluators)
}
