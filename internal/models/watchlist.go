package models

import "time"

// WatchlistItem is a single movie on a user's watchlist,
// keyed by MovieID within that user's list.
type WatchlistItem struct {
	MovieID    string    `json:"movieId"`
	Title      string    `json:"title"`
	Poster     string    `json:"poster,omitempty"`
	Year       int       `json:"year,omitempty"`
	Rating     float64   `json:"rating,omitempty"`
	Genre      []string  `json:"genre"`
	AddedAt    time.Time `json:"addedAt"`
	Watched    bool      `json:"watched"`
	UserRating *float64  `json:"userRating"`
	Notes      string    `json:"notes"`
}

// AddWatchlistRequest represents the JSON body for adding a movie
// swagger:model AddWatchlistRequest
type AddWatchlistRequest struct {
	// External movie identifier
	// required: true
	MovieID string `json:"movieId" validate:"required"`

	// Movie title
	// required: true
	Title string `json:"title" validate:"required"`

	Poster string   `json:"poster,omitempty"`
	Year   int      `json:"year,omitempty"`
	Rating float64  `json:"rating,omitempty"`
	Genre  []string `json:"genre,omitempty"`
}

// UpdateWatchlistRequest represents a partial update of a watchlist entry.
// Nil fields are left untouched.
// swagger:model UpdateWatchlistRequest
type UpdateWatchlistRequest struct {
	Watched    *bool    `json:"watched,omitempty"`
	UserRating *float64 `json:"userRating,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

// WatchlistStats summarizes a user's watchlist.
// swagger:model WatchlistStats
type WatchlistStats struct {
	TotalMovies       int             `json:"totalMovies"`
	WatchedMovies     int             `json:"watchedMovies"`
	UnwatchedMovies   int             `json:"unwatchedMovies"`
	AverageRating     float64         `json:"averageRating"`
	WatchedPercentage int             `json:"watchedPercentage"`
	GenreDistribution map[string]int  `json:"genreDistribution"`
	YearDistribution  map[int]int     `json:"yearDistribution"`
	RecentlyAdded     []WatchlistItem `json:"recentlyAdded"`
}

// WatchlistSearch holds the filter and sort parameters of a
// watchlist search.
type WatchlistSearch struct {
	Query     string
	Genre     string
	Watched   *bool
	SortBy    string // title, year, rating, addedAt
	SortOrder string // asc, desc
}
