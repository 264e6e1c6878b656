package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, name, password string) (*models.PublicUser, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an unverified account keyed by email and sends a 6-digit OTP. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.Response "User registered, OTP sent"
// @Failure 400 {object} models.Response "User already exists / validation error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Name, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateEmail):
				writeError(w, http.StatusBadRequest, "User already exists")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusCreated,
			"User registered successfully. Please check your email for verification.", user)
	}
}
