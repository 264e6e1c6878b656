package repositories

import (
	"context"
	"sync"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// WatchlistMemoryRepository keeps per-user watchlists in memory,
// preserving insertion order within each list.
type WatchlistMemoryRepository struct {
	mu    sync.RWMutex
	lists map[int][]models.WatchlistItem
}

// NewWatchlistMemoryRepository creates an empty store.
func NewWatchlistMemoryRepository() *WatchlistMemoryRepository {
	return &WatchlistMemoryRepository{
		lists: make(map[int][]models.WatchlistItem),
	}
}

// List returns a copy of the user's watchlist in insertion order.
func (r *WatchlistMemoryRepository) List(ctx context.Context, userID int) ([]models.WatchlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.lists[userID]
	out := make([]models.WatchlistItem, len(list))
	copy(out, list)
	return out, nil
}

// Find returns the entry for movieID, or nil when absent.
func (r *WatchlistMemoryRepository) Find(ctx context.Context, userID int, movieID string) (*models.WatchlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.lists[userID] {
		if item.MovieID == movieID {
			c := item
			return &c, nil
		}
	}
	return nil, nil
}

// Add appends the entry to the user's list.
func (r *WatchlistMemoryRepository) Add(ctx context.Context, userID int, item models.WatchlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[userID] = append(r.lists[userID], item)
	return nil
}

// Update overwrites the entry with the same MovieID. Returns false
// when the movie is not on the list.
func (r *WatchlistMemoryRepository) Update(ctx context.Context, userID int, item models.WatchlistItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[userID]
	for i := range list {
		if list[i].MovieID == item.MovieID {
			list[i] = item
			return true, nil
		}
	}
	return false, nil
}

// Remove deletes the entry and returns it, or nil when absent.
func (r *WatchlistMemoryRepository) Remove(ctx context.Context, userID int, movieID string) (*models.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[userID]
	for i := range list {
		if list[i].MovieID == movieID {
			removed := list[i]
			r.lists[userID] = append(list[:i], list[i+1:]...)
			return &removed, nil
		}
	}
	return nil, nil
}

// Clear empties the user's list and returns how many entries it held.
func (r *WatchlistMemoryRepository) Clear(ctx context.Context, userID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.lists[userID])
	delete(r.lists, userID)
	return n, nil
}
