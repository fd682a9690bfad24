package handlers

import (
	"net/http"

	"github.com/hackovate/judging-portal/models"
	"github.com/hackovate/judging-portal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/login. There is no session or token: the response
// only tells the client who it authenticated as.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := readJSON(w, r, &creds); err != nil {
		badRequestResponse(w, err)
		return
	}

	if err := validateStruct(creds); err != nil {
		errorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.authService.Login(r.Context(), creds)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"success": true, "user": user})
}
