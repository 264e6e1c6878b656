package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// Error variables
var (
	ErrAlreadyInWatchlist = errors.New("movie already in watchlist")
	ErrNotInWatchlist     = errors.New("movie not found in watchlist")
)

// WatchlistRepository defines the keyed-collection operations the
// watchlist service needs. Lookups return nil when absent.
type WatchlistRepository interface {
	List(ctx context.Context, userID int) ([]models.WatchlistItem, error)
	Find(ctx context.Context, userID int, movieID string) (*models.WatchlistItem, error)
	Add(ctx context.Context, userID int, item models.WatchlistItem) error
	Update(ctx context.Context, userID int, item models.WatchlistItem) (bool, error)
	Remove(ctx context.Context, userID int, movieID string) (*models.WatchlistItem, error)
	Clear(ctx context.Context, userID int) (int, error)
}

// WatchlistService manages per-user watchlists.
type WatchlistService struct {
	repo WatchlistRepository
}

// NewWatchlistService creates a new WatchlistService instance.
func NewWatchlistService(repo WatchlistRepository) *WatchlistService {
	return &WatchlistService{repo: repo}
}

// List returns the user's watchlist in insertion order.
func (svc *WatchlistService) List(ctx context.Context, userID int) ([]models.WatchlistItem, error) {
	return svc.repo.List(ctx, userID)
}

// Add puts a movie on the list. Each movie can appear at most once.
func (svc *WatchlistService) Add(ctx context.Context, userID int, req models.AddWatchlistRequest) (*models.WatchlistItem, error) {
	existing, err := svc.repo.Find(ctx, userID, req.MovieID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInWatchlist
	}

	genre := req.Genre
	if genre == nil {
		genre = []string{}
	}
	item := models.WatchlistItem{
		MovieID: req.MovieID,
		Title:   req.Title,
		Poster:  req.Poster,
		Year:    req.Year,
		Rating:  req.Rating,
		Genre:   genre,
		AddedAt: time.Now(),
	}
	if err := svc.repo.Add(ctx, userID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the non-nil fields of req to the entry.
func (svc *WatchlistService) Update(ctx context.Context, userID int, movieID string, req models.UpdateWatchlistRequest) (*models.WatchlistItem, error) {
	item, err := svc.repo.Find(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotInWatchlist
	}

	if req.Watched != nil {
		item.Watched = *req.Watched
	}
	if req.UserRating != nil {
		item.UserRating = req.UserRating
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	ok, err := svc.repo.Update(ctx, userID, *item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotInWatchlist
	}
	return item, nil
}

// Remove deletes the entry and returns it.
func (svc *WatchlistService) Remove(ctx context.Context, userID int, movieID string) (*models.WatchlistItem, error) {
	removed, err := svc.repo.Remove(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, ErrNotInWatchlist
	}
	return removed, nil
}

// Clear empties the list and returns how many entries were removed.
func (svc *WatchlistService) Clear(ctx context.Context, userID int) (int, error) {
	return svc.repo.Clear(ctx, userID)
}

// Stats aggregates the user's watchlist.
func (svc *WatchlistService) Stats(ctx context.Context, userID int) (*models.WatchlistStats, error) {
	list, err := svc.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &models.WatchlistStats{
		TotalMovies:       len(list),
		GenreDistribution: make(map[string]int),
		YearDistribution:  make(map[int]int),
		RecentlyAdded:     []models.WatchlistItem{},
	}

	var ratingSum float64
	var rated int
	for _, item := range list {
		if item.Watched {
			stats.WatchedMovies++
		}
		if item.UserRating != nil {
			ratingSum += *item.UserRating
			rated++
		}
		for _, g := range item.Genre {
			stats.GenreDistribution[g]++
		}
		if item.Year != 0 {
			stats.YearDistribution[item.Year]++
		}
	}

	stats.UnwatchedMovies = stats.TotalMovies - stats.WatchedMovies
	if rated > 0 {
		// one decimal, matching the API contract
		stats.AverageRating = math.Round(ratingSum/float64(rated)*10) / 10
	}
	if stats.TotalMovies > 0 {
		stats.WatchedPercentage = int(math.Round(float64(stats.WatchedMovies) / float64(stats.TotalMovies) * 100))
	}

	recent := make([]models.WatchlistItem, len(list))
	copy(recent, list)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].AddedAt.After(recent[j].AddedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentlyAdded = recent

	return stats, nil
}

// Search filters and sorts the user's watchlist. Returns the matches
// and the total list size.
func (svc *WatchlistService) Search(ctx context.Context, userID int, params models.WatchlistSearch) ([]models.WatchlistItem, int, error) {
	list, err := svc.repo.List(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	total := len(list)

	filtered := make([]models.WatchlistItem, 0, len(list))
	query := strings.ToLower(params.Query)
	for _, item := range list {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Notes), query) {
			continue
		}
		if params.Genre != "" && !containsString(item.Genre, params.Genre) {
			continue
		}
		if params.Watched != nil && item.Watched != *params.Watched {
			continue
		}
		filtered = append(filtered, item)
	}

	asc := params.SortOrder == "asc"
	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch params.SortBy {
		case "title":
			less = strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		case "year":
			less = filtered[i].Year < filtered[j].Year
		case "rating":
			less = ratingOrZero(filtered[i].UserRating) < ratingOrZero(filtered[j].UserRating)
		default: // addedAt
			less = filtered[i].AddedAt.Before(filtered[j].AddedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	return filtered, total, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func ratingOrZero(r *float64) float64 {
	if r == nil {
		return 0
	}
	return *r
}
