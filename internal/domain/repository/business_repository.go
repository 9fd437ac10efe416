// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
// The application layer will depend on this interface, not the concrete implementation.
type BusinessRepository interface {
	// FindByID retrieves a single business by its unique ID.
	FindByID(ctx context.Context, id entity.ID) (*entity.Business, error)

	// FindAll retrieves every business in the directory, any status.
	FindAll(ctx context.Context) ([]*entity.Business, error)

	// FindTopRated retrieves the highest-rated approved businesses.
	FindTopRated(ctx context.Context, limit int) ([]*entity.Business, error)

	// FindApprovedByCategory retrieves approved businesses in a category,
	// best rated first.
	FindApprovedByCategory(ctx context.Context, categoryID entity.ID) ([]*entity.Business, error)

	// SearchApprovedByName retrieves approved businesses whose name contains
	// the given fragment, case-insensitively.
	SearchApprovedByName(ctx context.Context, name string) ([]*entity.Business, error)

	// FilterApprovedByRating retrieves approved businesses with an average
	// rating at or above minRating.
	FilterApprovedByRating(ctx context.Context, minRating float64) ([]*entity.Business, error)

	// FindByOwner retrieves all businesses registered by an owner, enriched
	// with favorite and review counts.
	FindByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Business, error)

	// FindPending retrieves the moderation queue, oldest submissions first.
	FindPending(ctx context.Context) ([]*entity.Business, error)

	// Create persists a new business entity to the storage.
	Create(ctx context.Context, business *entity.Business) error

	// Update persists the full merged record produced by the approval workflow.
	Update(ctx context.Context, business *entity.Business) error

	// Delete removes a business. Rejection of a pending listing goes through
	// this same path; there is no rejected status.
	Delete(ctx context.Context, id entity.ID) error

	// ApproveAllPending transitions every pending business to approved as a
	// single statement and returns the number of records transitioned.
	ApproveAllPending(ctx context.Context) (int64, error)
}
