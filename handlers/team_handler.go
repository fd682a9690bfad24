package handlers

import (
	"errors"
	"net/http"

	"github.com/hackovate/judging-portal/services"
)

// 5MB is plenty for a team logo.
const maxLogoBytes = 5 << 20

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if err := validateStruct(input); err != nil {
		badRequestResponse(w, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{"id": team.ID})
}

func (h *TeamHandler) AssignProblemStatement(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	var input struct {
		ProblemStatementID int `json:"problem_statement_id" validate:"required,gt=0"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if err := validateStruct(input); err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := h.teamService.AssignProblemStatement(r.Context(), teamID, input.ProblemStatementID); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"success": true})
}

func (h *TeamHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		badRequestResponse(w, errors.New("request must be multipart/form-data with a logo file"))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, errors.New("missing logo file in form data"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	team, err := h.teamService.UploadLogo(r.Context(), teamID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"success": true, "logo_url": team.LogoURL})
}
