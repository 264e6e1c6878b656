package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// Error variables
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("you have already reviewed this movie")
	ErrNotReviewOwner  = errors.New("you can only modify your own reviews")
)

// ReviewRepository defines the review-store operations the service
// needs. Lookups return nil when absent.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id int) (*models.Review, error)
	FindByMovieAndUser(ctx context.Context, movieID string, userID int) (*models.Review, error)
	ListByMovie(ctx context.Context, movieID string) ([]models.Review, error)
	ListByUser(ctx context.Context, userID int) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	Save(ctx context.Context, review *models.Review) (bool, error)
	Delete(ctx context.Context, id int) (*models.Review, error)
}

// ReviewPage is one page of reviews with pagination and aggregates.
type ReviewPage struct {
	Reviews    []models.Review    `json:"reviews"`
	Pagination models.Pagination  `json:"pagination"`
	Stats      models.ReviewStats `json:"stats"`
}

// ReviewService manages movie reviews.
type ReviewService struct {
	reviews ReviewRepository
	users   UserRepository
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(reviews ReviewRepository, users UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, users: users}
}

// Create stores a new review. A user may review each movie once.
func (svc *ReviewService) Create(ctx context.Context, userID int, req models.CreateReviewRequest) (*models.Review, error) {
	existing, err := svc.reviews.FindByMovieAndUser(ctx, req.MovieID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	user, err := svc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	review := &models.Review{
		MovieID:   req.MovieID,
		UserID:    userID,
		Username:  user.Username,
		Rating:    req.Rating,
		Review:    req.Review,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update applies the non-nil fields of req. Only the author may update.
func (svc *ReviewService) Update(ctx context.Context, userID, reviewID int, req models.UpdateReviewRequest) (*models.Review, error) {
	review, err := svc.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Review != nil {
		review.Review = *req.Review
	}
	review.UpdatedAt = time.Now()

	ok, err := svc.reviews.Save(ctx, review)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// Delete removes the review. Only the author may delete.
func (svc *ReviewService) Delete(ctx context.Context, userID, reviewID int) (*models.Review, error) {
	review, err := svc.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}
	return svc.reviews.Delete(ctx, reviewID)
}

// Like increments the review's like counter and returns the new count.
func (svc *ReviewService) Like(ctx context.Context, reviewID int) (*models.Review, error) {
	review, err := svc.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	review.Likes++
	if _, err := svc.reviews.Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByMovie returns a page of the movie's reviews with aggregates.
// sortBy is one of rating, likes, createdAt.
func (svc *ReviewService) ListByMovie(ctx context.Context, movieID string, page, limit int, sortBy, sortOrder string) (*ReviewPage, error) {
	reviews, err := svc.reviews.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	asc := sortOrder == "asc"
	sort.SliceStable(reviews, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "rating":
			less = reviews[i].Rating < reviews[j].Rating
		case "likes":
			less = reviews[i].Likes < reviews[j].Likes
		default: // createdAt
			less = reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	stats := models.ReviewStats{
		TotalReviews:       len(reviews),
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
		if whole := int(r.Rating); float64(whole) == r.Rating && whole >= 1 && whole <= 5 {
			stats.RatingDistribution[whole]++
		}
	}
	if len(reviews) > 0 {
		stats.AverageRating = math.Round(sum/float64(len(reviews))*10) / 10
	}

	paged, pagination := paginate(reviews, page, limit)
	return &ReviewPage{Reviews: paged, Pagination: pagination, Stats: stats}, nil
}

// ListByUser returns a page of the user's reviews with aggregates.
func (svc *ReviewService) ListByUser(ctx context.Context, userID, page, limit int) (*ReviewPage, error) {
	reviews, err := svc.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := models.ReviewStats{TotalReviews: len(reviews)}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
		stats.TotalLikes += r.Likes
	}
	if len(reviews) > 0 {
		stats.AverageRating = math.Round(sum/float64(len(reviews))*10) / 10
	}

	paged, pagination := paginate(reviews, page, limit)
	return &ReviewPage{Reviews: paged, Pagination: pagination, Stats: stats}, nil
}

// ListRecent returns the newest reviews across all movies.
func (svc *ReviewService) ListRecent(ctx context.Context, limit int) ([]models.Review, error) {
	reviews, err := svc.reviews.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func paginate(reviews []models.Review, page, limit int) ([]models.Review, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(reviews)
	skip := (page - 1) * limit
	end := skip + limit
	if skip > total {
		skip = total
	}
	if end > total {
		end = total
	}

	totalPages := (total + limit - 1) / limit
	return reviews[skip:end], models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: end < total,
		HasPrevPage: page > 1,
	}
}
