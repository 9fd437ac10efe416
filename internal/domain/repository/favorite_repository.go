package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"
)

// ErrFavoriteNotFound is a domain-specific error returned when a favorite is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the standard operations for favorite persistence.
type FavoriteRepository interface {
	// FindByUser retrieves all favorites of a user joined with listing
	// summaries, newest first.
	FindByUser(ctx context.Context, userID entity.ID) ([]*entity.Favorite, error)

	// Add persists a favorite for the (user, business) pair. Adding an
	// existing pair is a no-op and reports created=false.
	Add(ctx context.Context, userID, businessID entity.ID) (created bool, err error)

	// Remove deletes the favorite for the (user, business) pair.
	Remove(ctx context.Context, userID, businessID entity.ID) error
}
