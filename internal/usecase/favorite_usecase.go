package usecase

import (
	"context"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
)

// AddFavoriteOutput reports whether a new favorite row was created.
type AddFavoriteOutput struct {
	Created bool `json:"created"`
}

// FavoriteUsecase defines the interface for favorite list operations.
type FavoriteUsecase interface {
	// GetMyFavorites returns the caller's favorited listings.
	GetMyFavorites(ctx context.Context, caller authz.Caller) ([]*entity.Favorite, error)

	// AddFavorite marks a listing as a favorite. Adding twice is a no-op.
	AddFavorite(ctx context.Context, caller authz.Caller, businessID entity.ID) (*AddFavoriteOutput, error)

	// RemoveFavorite unmarks a favorited listing.
	RemoveFavorite(ctx context.Context, caller authz.Caller, businessID entity.ID) error
}
