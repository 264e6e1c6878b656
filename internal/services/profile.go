package services

import (
	"context"

	"github.com/cinemahub/cinemahub-api/internal/models"
)

// ProfileService exposes the account-profile view built from the user
// record and the watchlist size.
type ProfileService struct {
	users     UserRepository
	watchlist WatchlistRepository
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users UserRepository, watchlist WatchlistRepository) *ProfileService {
	return &ProfileService{users: users, watchlist: watchlist}
}

// Get returns the profile of the user.
func (svc *ProfileService) Get(ctx context.Context, userID int) (*models.ProfileData, error) {
	user, err := svc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	items, err := svc.watchlist.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileData{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		Picture:        user.Picture,
		AuthProvider:   user.AuthProvider,
		WatchlistCount: len(items),
		CreatedAt:      user.CreatedAt,
	}, nil
}

// UpdateUsername replaces the display name.
func (svc *ProfileService) UpdateUsername(ctx context.Context, userID int, username string) (*models.PublicUser, error) {
	user, err := svc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Username = username
	if err := svc.users.Save(ctx, user); err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}
