package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
// Average-rating aggregation on the business record is handled by a database
// trigger, not by these methods.
type ReviewRepository interface {
	// FindByBusiness retrieves all reviews for a business, newest first,
	// joined with the reviewer's name.
	FindByBusiness(ctx context.Context, businessID entity.ID) ([]*entity.Review, error)

	// FindByUser retrieves all reviews written by a user, newest first.
	FindByUser(ctx context.Context, userID entity.ID) ([]*entity.Review, error)

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id entity.ID) (*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies the rating and comment of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id entity.ID) error
}
