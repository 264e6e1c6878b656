package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// PasswordResetter defines the interface that the service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// NewResetPasswordHandler returns an HTTP handler that completes a
// password reset.
// @Summary Reset a password
// @Description Validates the emailed reset token and replaces the account password.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body models.ResetPasswordRequest true "Password reset completion"
// @Success 200 {object} models.Response "Password replaced"
// @Failure 400 {object} models.Response "Invalid reset token / reset token has expired"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetPasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidResetToken):
				writeError(w, http.StatusBadRequest, "Invalid reset token")
			case errors.Is(err, services.ErrResetTokenExpired):
				writeError(w, http.StatusBadRequest, "Reset token has expired")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Password reset successfully", nil)
	}
}
