package repositories

import (
	"context"
	"sync"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// ReviewMemoryRepository keeps all reviews in memory with
// sequential integer ids.
type ReviewMemoryRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
	nextID  int
}

// NewReviewMemoryRepository creates an empty store.
func NewReviewMemoryRepository() *ReviewMemoryRepository {
	return &ReviewMemoryRepository{nextID: 1}
}

// Create assigns the next id and stores the review.
func (r *ReviewMemoryRepository) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, *review)
	return nil
}

// FindByID returns the review with the given id, or nil when absent.
func (r *ReviewMemoryRepository) FindByID(ctx context.Context, id int) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rv := range r.reviews {
		if rv.ID == id {
			c := rv
			return &c, nil
		}
	}
	return nil, nil
}

// FindByMovieAndUser returns the user's review of the movie, or nil.
func (r *ReviewMemoryRepository) FindByMovieAndUser(ctx context.Context, movieID string, userID int) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rv := range r.reviews {
		if rv.MovieID == movieID && rv.UserID == userID {
			c := rv
			return &c, nil
		}
	}
	return nil, nil
}

// ListByMovie returns all reviews of the movie in insertion order.
func (r *ReviewMemoryRepository) ListByMovie(ctx context.Context, movieID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Review
	for _, rv := range r.reviews {
		if rv.MovieID == movieID {
			out = append(out, rv)
		}
	}
	return out, nil
}

// ListByUser returns all reviews written by the user.
func (r *ReviewMemoryRepository) ListByUser(ctx context.Context, userID int) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Review
	for _, rv := range r.reviews {
		if rv.UserID == userID {
			out = append(out, rv)
		}
	}
	return out, nil
}

// ListAll returns a copy of every review.
func (r *ReviewMemoryRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

// Save overwrites the stored review with the same id. Returns false
// when the id is unknown.
func (r *ReviewMemoryRepository) Save(ctx context.Context, review *models.Review) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == review.ID {
			r.reviews[i] = *review
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the review and returns it, or nil when absent.
func (r *ReviewMemoryRepository) Delete(ctx context.Context, id int) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			removed := r.reviews[i]
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return &removed, nil
		}
	}
	return nil, nil
}
