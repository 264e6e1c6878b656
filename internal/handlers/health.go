package handlers

import (
	"net/http"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Tags misc
// @Produce json
// @Success 200 {object} models.Response "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Response{
			Success: true,
			Message: "CinemaHub API is running",
			Data: map[string]any{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			},
		})
	}
}
