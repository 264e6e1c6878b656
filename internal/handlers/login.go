package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.AuthData, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Authenticate a user
// @Description Verifies email and password for a verified account and returns a 7-day session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "User login request"
// @Success 200 {object} models.Response "Session token and user summary"
// @Failure 400 {object} models.Response "Invalid credentials / email not verified"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		data, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusBadRequest, "Invalid credentials")
			case errors.Is(err, services.ErrNotVerified):
				writeError(w, http.StatusBadRequest, "Please verify your email first")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Login successful", data)
	}
}
