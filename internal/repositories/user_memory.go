package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// UserMemoryRepository is the process-local credential store used
// when no database is configured. It stands in for a future
// persistent store behind the same interface.
type UserMemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int]*models.User
	nextID int
}

// NewUserMemoryRepository creates an empty in-memory store.
func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		byID:   make(map[int]*models.User),
		nextID: 1,
	}
}

// FindByEmail returns the user with the given email, or nil when absent.
// Email comparison is exact (case-sensitive).
func (r *UserMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// FindByID returns the user with the given id, or nil when absent.
func (r *UserMemoryRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

// Save inserts the user when its ID is zero, assigning the next
// sequential identity, and overwrites the stored record otherwise.
func (r *UserMemoryRepository) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now()
		}
	}
	c := *user
	r.byID[user.ID] = &c
	return nil
}
