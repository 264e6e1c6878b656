package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// OTPResender defines the interface that the service must implement.
type OTPResender interface {
	ResendOTP(ctx context.Context, email string) error
}

// NewResendOTPHandler returns an HTTP handler that re-issues an OTP.
// @Summary Resend the verification OTP
// @Description Generates a fresh 6-digit code for the account, replacing any pending one.
// @Tags auth
// @Accept json
// @Produce json
// @Param resendOTPRequest body models.ResendOTPRequest true "OTP resend request"
// @Success 200 {object} models.Response "New OTP sent"
// @Failure 404 {object} models.Response "User not found"
// @Router /auth/resend-otp [post]
func NewResendOTPHandler(svc OTPResender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResendOTPRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := svc.ResendOTP(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "New OTP sent successfully", nil)
	}
}
