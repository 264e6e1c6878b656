package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// GoogleSigner defines the interface that the service must implement.
type GoogleSigner interface {
	GoogleSignIn(ctx context.Context, email, name, googleID, picture string) (*models.AuthData, error)
}

// NewGoogleAuthHandler returns an HTTP handler for Google sign-in.
// The Google profile is taken on trust; accounts created here are
// pre-verified and skip the OTP flow.
// @Summary Sign in with a Google profile
// @Description Creates or links an account from the posted Google profile and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param googleAuthRequest body models.GoogleAuthRequest true "Google profile"
// @Success 200 {object} models.Response "Session token and user summary"
// @Failure 400 {object} models.Response "Missing required Google authentication data"
// @Router /auth/google [post]
func NewGoogleAuthHandler(svc GoogleSigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GoogleAuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" || req.Name == "" || req.GoogleID == "" {
			writeError(w, http.StatusBadRequest, "Missing required Google authentication data")
			return
		}

		data, err := svc.GoogleSignIn(r.Context(), req.Email, req.Name, req.GoogleID, req.Picture)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "Google authentication successful", data)
	}
}
