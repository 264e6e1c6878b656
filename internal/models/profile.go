package models

import "time"

// ProfileData is the profile view of a user.
// swagger:model ProfileData
type ProfileData struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Picture        string    `json:"picture,omitempty"`
	AuthProvider   string    `json:"authProvider,omitempty"`
	WatchlistCount int       `json:"watchlistCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UpdateProfileRequest represents the JSON body for a profile update.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New display name, at least 3 characters
	// required: true
	// example: alice_2
	Username string `json:"username" validate:"required,min=3"`
}
