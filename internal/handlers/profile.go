package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/middlewares"
	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// ProfileProvider defines the interface that the service must implement.
type ProfileProvider interface {
	Get(ctx context.Context, userID int) (*models.ProfileData, error)
	UpdateUsername(ctx context.Context, userID int, username string) (*models.PublicUser, error)
}

// NewGetProfileHandler returns an HTTP handler for the profile view.
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Profile with watchlist count"
// @Failure 404 {object} models.Response "User not found"
// @Router /users/profile [get]
func NewGetProfileHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		profile, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "", profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body models.UpdateProfileRequest true "Profile update"
// @Success 200 {object} models.Response "Updated user summary"
// @Failure 404 {object} models.Response "User not found"
// @Router /users/profile [put]
func NewUpdateProfileHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req models.UpdateProfileRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.UpdateUsername(r.Context(), claims.UserID, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Profile updated successfully", user)
	}
}
