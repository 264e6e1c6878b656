package models

import "time"

// Review is a user's review of a movie. One review per
// (MovieID, UserID) pair.
type Review struct {
	ID        int       `json:"id"`
	MovieID   string    `json:"movieId"`
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Rating    float64   `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Likes     int       `json:"likes"`
}

// CreateReviewRequest represents the JSON body for creating a review
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// External movie identifier
	// required: true
	MovieID string `json:"movieId" validate:"required"`

	// Rating between 1 and 5
	// required: true
	// example: 4.5
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`

	// Review text, 10 to 1000 characters
	// required: true
	Review string `json:"review" validate:"required,min=10,max=1000"`
}

// UpdateReviewRequest represents a partial review update.
// swagger:model UpdateReviewRequest
type UpdateReviewRequest struct {
	Rating *float64 `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Review *string  `json:"review,omitempty" validate:"omitempty,min=10,max=1000"`
}

// Pagination describes the page window of a list response.
// swagger:model Pagination
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalReviews"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// ReviewStats aggregates the reviews of a movie or a user.
// swagger:model ReviewStats
type ReviewStats struct {
	AverageRating      float64     `json:"averageRating"`
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution,omitempty"`
	TotalLikes         int         `json:"totalLikes,omitempty"`
}
