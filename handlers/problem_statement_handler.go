package handlers

import (
	"net/http"

	"github.com/hackovate/judging-portal/services"
)

type ProblemStatementHandler struct {
	psService services.ProblemStatementService
}

func NewProblemStatementHandler(psService services.ProblemStatementService) *ProblemStatementHandler {
	return &ProblemStatementHandler{psService: psService}
}

func (h *ProblemStatementHandler) List(w http.ResponseWriter, r *http.Request) {
	statements, err := h.psService.ListProblemStatements(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statements)
}
