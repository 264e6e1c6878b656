package handlers

import (
	"context"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// VideoSearcher defines the interface that the YouTube facade must
// implement.
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int) (*models.VideoList, error)
}

// NewYouTubeSearchHandler returns an HTTP handler proxying YouTube
// video search. Falls back to deterministic mock results when no API
// key is configured.
// @Summary Search YouTube videos
// @Tags proxies
// @Produce json
// @Param q query string true "Search term"
// @Param maxResults query int false "Maximum number of results" default(12)
// @Success 200 {object} models.Response "Video list"
// @Failure 400 {object} models.Response "Search query is required"
// @Router /youtube/search [get]
func NewYouTubeSearchHandler(svc VideoSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query := q.Get("q")
		if query == "" {
			writeError(w, http.StatusBadRequest, "Search query is required")
			return
		}

		list, err := svc.Search(r.Context(), query, intQuery(q.Get("maxResults"), 12))
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", list)
	}
}
