package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hackovate/judging-portal/services"
)

type ParameterHandler struct {
	parameterService services.ParameterService
}

func NewParameterHandler(parameterService services.ParameterService) *ParameterHandler {
	return &ParameterHandler{parameterService: parameterService}
}

// List returns every rubric parameter, or only one round's rubric when a
// round_id query parameter is present.
func (h *ParameterHandler) List(w http.ResponseWriter, r *http.Request) {
	var roundID *int
	if raw := r.URL.Query().Get("round_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			badRequestResponse(w, errors.New("round_id must be a positive integer"))
			return
		}
		roundID = &id
	}

	parameters, err := h.parameterService.ListParameters(r.Context(), roundID)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parameters)
}
