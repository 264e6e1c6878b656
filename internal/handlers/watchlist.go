package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cinemahub/cinemahub-api/internal/middlewares"
	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/services"
)

// Watchlister defines the interface that the service must implement.
type Watchlister interface {
	List(ctx context.Context, userID int) ([]models.WatchlistItem, error)
	Add(ctx context.Context, userID int, req models.AddWatchlistRequest) (*models.WatchlistItem, error)
	Update(ctx context.Context, userID int, movieID string, req models.UpdateWatchlistRequest) (*models.WatchlistItem, error)
	Remove(ctx context.Context, userID int, movieID string) (*models.WatchlistItem, error)
	Clear(ctx context.Context, userID int) (int, error)
	Stats(ctx context.Context, userID int) (*models.WatchlistStats, error)
	Search(ctx context.Context, userID int, params models.WatchlistSearch) ([]models.WatchlistItem, int, error)
}

// NewGetWatchlistHandler returns an HTTP handler listing the watchlist.
// @Summary Get the user's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Watchlist and count"
// @Router /watchlist [get]
func NewGetWatchlistHandler(svc Watchlister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		list, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", map[string]any{
			"watchlist": list,
			"count":     len(list),
		})
	}
}

// NewAddToWatchlistHandler returns an HTTP handler adding a movie.
// @Summary Add a movie to the watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addWatchlistRequest body models.AddWatchlistRequest true "Movie to add"
// @Success 201 {object} models.Response "Stored watchlist entry"
// @Failure 400 {object} models.Response "Movie already in watchlist / validation error"
// @Router /watchlist [post]
func NewAddToWatchlistHandler(svc Watchlister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req models.AddWatchlistRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		item, err := svc.Add(r.Context(), claims.UserID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyInWatchlist):
				writeError(w, http.StatusBadRequest, "Movie already in watchlist")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusCreated, "Movie added to watchlist successfully", item)
	}
}

// NewUpdateWatchlistHandler returns an HTTP handler for partial updates
// of a watchlist entry (watched flag, personal rating, notes).
// @Summary Update a watchlist entry
// @Tags watchlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movieId path string true "Movie identifier"
// @Param updateWatchlistRequest body models.UpdateWatchlistRequest true "Fields to update"
// @Success 200 {object} models.Response "Updated watchlist entry"
// @Failure 404 {object} models.Response "Movie not found in watchlist"
// @Router /watchlist/{movieId} [put]
func NewUpdateWatchlistHandler(svc Watchlister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req models.UpdateWatchlistRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		item, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "movieId"), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotInWatchlist):
				writeError(w, http.StatusNotFound, "Movie not found in watchlist")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Watchlist updated successfully", item)
	}
}

// NewRemoveFromWatchlistHandler returns an HTTP handler removing a movie.
// @Summary Remove a movie from the watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movieId path string true "Movie identifier"
// @Success 200 {object} models.Response "Removed watchlist entry"
// @Failure 404 {object} models.Response "Movie not found in watchlist"
// @Router /watchlist/{movieId} [delete]
func NewRemoveFromWatchlistHandler(svc Watchlister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		item, err := svc.Remove(r.Context(), claims.UserID, chi.URLParam(r, "movieId"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotInWatchlist):
				writeError(w, http.StatusNotFound, "Movie not found in watchlist")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Movie removed from watchlist successfully", item)
	}
}

// NewClearWatchlistHandler returns an HTTP handler emptying the list.
// @Summary Clear the watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Number of removed entries"
// @Router /watchlist [delete]
func NewClearWatchlistHandler(svc Watchlister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		removed, err := svc.Clear(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "Watchlist cleared successfully", map[string]any{
			"removedCount": removed,
		})
	}
}

// NewWatchlistStatsHandler returns an HTTP handler for list aggregates.
// @Summary Get watchlist statistics
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response "Watchlist aggregates"
// @Router /watchlist/stats [get]
func NewWatchlistStatsHandler(svc Watchlister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		stats, err := svc.Stats(r.Context(), claims.UserID)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", stats)
	}
}

// NewSearchWatchlistHandler returns an HTTP handler filtering and
// sorting the watchlist by query parameters.
// @Summary Search the watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param query query string false "Substring of title or notes"
// @Param genre query string false "Exact genre"
// @Param watched query boolean false "Watched filter"
// @Param sortBy query string false "title, year, rating or addedAt" default(addedAt)
// @Param sortOrder query string false "asc or desc" default(desc)
// @Success 200 {object} models.Response "Matching entries"
// @Router /watchlist/search [get]
func NewSearchWatchlistHandler(svc Watchlister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		q := r.URL.Query()
		params := models.WatchlistSearch{
			Query:     q.Get("query"),
			Genre:     q.Get("genre"),
			SortBy:    q.Get("sortBy"),
			SortOrder: q.Get("sortOrder"),
		}
		if raw := q.Get("watched"); raw != "" {
			watched, err := strconv.ParseBool(raw)
			if err == nil {
				params.Watched = &watched
			}
		}

		movies, total, err := svc.Search(r.Context(), claims.UserID, params)
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", map[string]any{
			"movies":     movies,
			"count":      len(movies),
			"totalCount": total,
		})
	}
}
