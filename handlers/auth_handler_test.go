package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/services"
)

type fakeAuthService struct {
	users map[string]*models.User
}

func (s *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	user, ok := s.users[creds.Username]
	if !ok || user.Password != creds.Password {
		return nil, services.ErrInvalidCredentials
	}
	return user, nil
}

func newAuthService() *fakeAuthService {
	evaluatorID := 1
	return &fakeAuthService{users: map[string]*models.User{
		"admin":   {ID: 1, Username: "admin", Password: "admin123", Role: models.RoleAdmin},
		"rishabh": {ID: 2, Username: "rishabh", Password: "rishabh123", Role: models.RoleJudge, EvaluatorID: &evaluatorID},
	}}
}

func doLogin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	NewAuthHandler(newAuthService()).Login(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	rec := doLogin(t, `{"username":"rishabh","password":"rishabh123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Success bool         `json:"success"`
		User    *models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	require.Equal(t, "rishabh", payload.User.Username)
	require.Equal(t, models.RoleJudge, payload.User.Role)
	require.NotNil(t, payload.User.EvaluatorID)

	// The password must never leave the server.
	require.NotContains(t, rec.Body.String(), "rishabh123")
}

func TestLoginWrongPassword(t *testing.T) {
	rec := doLogin(t, `{"username":"admin","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, false, payload["success"])
	require.Equal(t, "Invalid credentials", payload["message"])
}

func TestLoginEmptyCredentials(t *testing.T) {
	rec := doLogin(t, `{"username":"","password":""}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	rec := doLogin(t, `{"username":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
