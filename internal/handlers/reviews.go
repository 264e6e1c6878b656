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

// Reviewer defines the interface that the service must implement.
type Reviewer interface {
	Create(ctx context.Context, userID int, req models.CreateReviewRequest) (*models.Review, error)
	Update(ctx context.Context, userID, reviewID int, req models.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, userID, reviewID int) (*models.Review, error)
	Like(ctx context.Context, reviewID int) (*models.Review, error)
	ListByMovie(ctx context.Context, movieID string, page, limit int, sortBy, sortOrder string) (*services.ReviewPage, error)
	ListByUser(ctx context.Context, userID, page, limit int) (*services.ReviewPage, error)
	ListRecent(ctx context.Context, limit int) ([]models.Review, error)
}

// NewGetMovieReviewsHandler returns an HTTP handler listing the reviews
// of a movie with pagination and aggregates. Public.
// @Summary Get the reviews of a movie
// @Tags reviews
// @Produce json
// @Param movieId path string true "Movie identifier"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sortBy query string false "rating, likes or createdAt" default(createdAt)
// @Param sortOrder query string false "asc or desc" default(desc)
// @Success 200 {object} models.Response "Reviews, pagination and stats"
// @Router /reviews/movie/{movieId} [get]
func NewGetMovieReviewsHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := intQuery(q.Get("page"), 1)
		limit := intQuery(q.Get("limit"), 10)

		pageData, err := svc.ListByMovie(r.Context(), chi.URLParam(r, "movieId"),
			page, limit, q.Get("sortBy"), q.Get("sortOrder"))
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", pageData)
	}
}

// NewCreateReviewHandler returns an HTTP handler creating a review.
// @Summary Create a review
// @Description Stores a review for a movie. Each user may review a movie once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createReviewRequest body models.CreateReviewRequest true "Review to create"
// @Success 201 {object} models.Response "Stored review"
// @Failure 400 {object} models.Response "Already reviewed / validation error"
// @Failure 404 {object} models.Response "User not found"
// @Router /reviews [post]
func NewCreateReviewHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		var req models.CreateReviewRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		review, err := svc.Create(r.Context(), claims.UserID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateReview):
				writeError(w, http.StatusBadRequest, "You have already reviewed this movie")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusCreated, "Review created successfully", review)
	}
}

// NewUpdateReviewHandler returns an HTTP handler updating a review.
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review identifier"
// @Param updateReviewRequest body models.UpdateReviewRequest true "Fields to update"
// @Success 200 {object} models.Response "Updated review"
// @Failure 403 {object} models.Response "Not the review owner"
// @Failure 404 {object} models.Response "Review not found"
// @Router /reviews/{reviewId} [put]
func NewUpdateReviewHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		reviewID, err := strconv.Atoi(chi.URLParam(r, "reviewId"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Review not found")
			return
		}

		var req models.UpdateReviewRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		review, err := svc.Update(r.Context(), claims.UserID, reviewID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeError(w, http.StatusNotFound, "Review not found")
			case errors.Is(err, services.ErrNotReviewOwner):
				writeError(w, http.StatusForbidden, "You can only update your own reviews")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Review updated successfully", review)
	}
}

// NewDeleteReviewHandler returns an HTTP handler deleting a review.
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review identifier"
// @Success 200 {object} models.Response "Deleted review"
// @Failure 403 {object} models.Response "Not the review owner"
// @Failure 404 {object} models.Response "Review not found"
// @Router /reviews/{reviewId} [delete]
func NewDeleteReviewHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		reviewID, err := strconv.Atoi(chi.URLParam(r, "reviewId"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Review not found")
			return
		}

		review, err := svc.Delete(r.Context(), claims.UserID, reviewID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeError(w, http.StatusNotFound, "Review not found")
			case errors.Is(err, services.ErrNotReviewOwner):
				writeError(w, http.StatusForbidden, "You can only delete your own reviews")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Review deleted successfully", review)
	}
}

// NewLikeReviewHandler returns an HTTP handler incrementing the like
// counter of a review.
// @Summary Like a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review identifier"
// @Success 200 {object} models.Response "Review with the new like count"
// @Failure 404 {object} models.Response "Review not found"
// @Router /reviews/{reviewId}/like [post]
func NewLikeReviewHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middlewares.UserFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		reviewID, err := strconv.Atoi(chi.URLParam(r, "reviewId"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Review not found")
			return
		}

		review, err := svc.Like(r.Context(), reviewID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeError(w, http.StatusNotFound, "Review not found")
			default:
				writeInternal(w, err)
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Review liked successfully", review)
	}
}

// NewGetUserReviewsHandler returns an HTTP handler listing the reviews
// written by a user. Public.
// @Summary Get the reviews of a user
// @Tags reviews
// @Produce json
// @Param userId path int true "User identifier"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.Response "Reviews, pagination and stats"
// @Router /reviews/user/{userId} [get]
func NewGetUserReviewsHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		q := r.URL.Query()
		pageData, err := svc.ListByUser(r.Context(), userID,
			intQuery(q.Get("page"), 1), intQuery(q.Get("limit"), 10))
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", pageData)
	}
}

// NewGetRecentReviewsHandler returns an HTTP handler listing the newest
// reviews across all movies. Public.
// @Summary Get recent reviews
// @Tags reviews
// @Produce json
// @Param limit query int false "Maximum number of reviews" default(10)
// @Success 200 {object} models.Response "Newest reviews"
// @Router /reviews/recent [get]
func NewGetRecentReviewsHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.ListRecent(r.Context(), intQuery(r.URL.Query().Get("limit"), 10))
		if err != nil {
			writeInternal(w, err)
			return
		}

		writeSuccess(w, http.StatusOK, "", map[string]any{
			"reviews": reviews,
			"count":   len(reviews),
		})
	}
}

// intQuery parses a positive integer query parameter, falling back to
// def when absent or malformed.
func intQuery(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
