package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/facades"
	"github.com/cinemahub/cinemahub-api/internal/models"
)

// TrailerFinder defines the interface that the YouTube facade must
// implement.
type TrailerFinder interface {
	Trailer(ctx context.Context, movieTitle string, year int) (*models.Video, error)
}

// NewMovieTrailerHandler returns an HTTP handler resolving the official
// trailer of a movie.
// @Summary Find the trailer of a movie
// @Tags proxies
// @Produce json
// @Param movieTitle query string true "Movie title"
// @Param year query int false "Release year"
// @Success 200 {object} models.Response "Trailer video"
// @Failure 400 {object} models.Response "Movie title is required"
// @Failure 404 {object} models.Response "No trailer found"
// @Router /movies/trailer [get]
func NewMovieTrailerHandler(svc TrailerFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		title := q.Get("movieTitle")
		if title == "" {
			writeError(w, http.StatusBadRequest, "Movie title is required")
			return
		}

		video, err := svc.Trailer(r.Context(), title, intQuery(q.Get("year"), 0))
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrNoTrailer):
				writeError(w, http.StatusNotFound, "No trailer found for this movie")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Trailer found successfully", video)
	}
}
