package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/services"
)

type fakeTeamService struct {
	teams       []models.Team
	assignments map[int]int
	assignErr   error
}

func (s *fakeTeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.teams, nil
}

func (s *fakeTeamService) CreateTeam(ctx context.Context, input services.CreateTeamInput) (*models.Team, error) {
	return &models.Team{ID: 31, Name: input.Name, Description: input.Description}, nil
}

func (s *fakeTeamService) AssignProblemStatement(ctx context.Context, teamID, problemStatementID int) error {
	if s.assignErr != nil {
		return s.assignErr
	}
	if s.assignments == nil {
		s.assignments = map[int]int{}
	}
	s.assignments[teamID] = problemStatementID
	return nil
}

func (s *fakeTeamService) UploadLogo(ctx context.Context, teamID int, contentType string, reader io.Reader) (*models.Team, error) {
	return nil, services.ErrLogoUploadsDisabled
}

func teamRouter(svc services.TeamService) *chi.Mux {
	h := NewTeamHandler(svc)
	router := chi.NewRouter()
	router.Route("/api/teams", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/{teamID}/assign-ps", h.AssignProblemStatement)
	})
	return router
}

func TestCreateTeamReturnsID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams", strings.NewReader(`{"name":"Hexabyte","description":"late entry"}`))
	teamRouter(&fakeTeamService{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 31.0, payload["id"])
}

func TestCreateTeamRequiresName(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams", strings.NewReader(`{"description":"nameless"}`))
	teamRouter(&fakeTeamService{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignProblemStatement(t *testing.T) {
	svc := &fakeTeamService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams/5/assign-ps", strings.NewReader(`{"problem_statement_id":3}`))
	teamRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[int]int{5: 3}, svc.assignments)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, true, payload["success"])
}

func TestAssignProblemStatementMissingStatement(t *testing.T) {
	svc := &fakeTeamService{assignErr: services.ErrProblemStatementNotFound}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams/5/assign-ps", strings.NewReader(`{"problem_statement_id":999}`))
	teamRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
