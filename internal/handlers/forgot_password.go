package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// PasswordForgetter defines the interface that the service must implement.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// NewForgotPasswordHandler returns an HTTP handler that starts a
// password reset.
// @Summary Request a password reset link
// @Description Issues a 1-hour reset token and emails the reset link. A new request supersedes any prior token.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body models.ForgotPasswordRequest true "Password reset request"
// @Success 200 {object} models.Response "Reset email sent"
// @Failure 404 {object} models.Response "User not found"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ForgotPasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Password reset email sent successfully", nil)
	}
}
