package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// OTPVerifier defines the interface that the service must implement.
type OTPVerifier interface {
	VerifyOTP(ctx context.Context, email string, code int) (*models.AuthData, error)
}

// NewVerifyOTPHandler returns an HTTP handler for email verification.
// @Summary Verify an email with an OTP
// @Description Checks the pending 6-digit code, marks the account verified and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyOTPRequest body models.VerifyOTPRequest true "OTP verification request"
// @Success 200 {object} models.Response "Email verified, session token issued"
// @Failure 400 {object} models.Response "Invalid OTP / OTP has expired"
// @Failure 404 {object} models.Response "User not found"
// @Router /auth/verify-otp [post]
func NewVerifyOTPHandler(svc OTPVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyOTPRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		// The len=6,numeric tag guarantees this parses.
		code, err := strconv.Atoi(req.OTP)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid OTP")
			return
		}

		data, err := svc.VerifyOTP(r.Context(), req.Email, code)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrCodeMismatch):
				writeError(w, http.StatusBadRequest, "Invalid OTP")
			case errors.Is(err, services.ErrCodeExpired):
				writeError(w, http.StatusBadRequest, "OTP has expired")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Email verified successfully", data)
	}
}
