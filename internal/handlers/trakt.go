package handlers

import (
	"context"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// MovieCataloger defines the interface that the Trakt facade must
// implement.
type MovieCataloger interface {
	Trending(ctx context.Context, limit int) ([]models.Movie, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
}

// NewTraktTrendingHandler returns an HTTP handler for trending movies.
// Falls back to a built-in catalog when no client ID is configured.
// @Summary Get trending movies
// @Tags proxies
// @Produce json
// @Param limit query int false "Maximum number of movies" default(20)
// @Success 200 {object} models.Response "Trending movies"
// @Router /trakt/trending [get]
func NewTraktTrendingHandler(svc MovieCataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := svc.Trending(r.Context(), intQuery(r.URL.Query().Get("limit"), 20))
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", map[string]any{
			"movies": movies,
			"count":  len(movies),
		})
	}
}

// NewTraktSearchHandler returns an HTTP handler for movie search.
// @Summary Search movies
// @Tags proxies
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {object} models.Response "Matching movies"
// @Failure 400 {object} models.Response "Search query is required"
// @Router /trakt/search [get]
func NewTraktSearchHandler(svc MovieCataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if query == "" {
			writeError(w, http.StatusBadRequest, "Search query is required")
			return
		}

		movies, err := svc.Search(r.Context(), query)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", map[string]any{
			"movies": movies,
			"count":  len(movies),
		})
	}
}
