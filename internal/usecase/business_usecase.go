// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
)

// --- Input DTOs ---

// CreateBusinessInput defines the data required to create a new listing.
type CreateBusinessInput struct {
	OwnerID     entity.ID `json:"owner_id"`
	CategoryID  entity.ID `json:"category_id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email" validate:"omitempty,email"`
	Website     string    `json:"website"`
	Image       string    `json:"image"`
}

// UpdateBusinessInput carries a partial update. Nil fields are left unchanged.
type UpdateBusinessInput struct {
	CategoryID  *entity.ID     `json:"category_id,omitempty"`
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Address     *string        `json:"address,omitempty"`
	City        *string        `json:"city,omitempty"`
	State       *string        `json:"state,omitempty"`
	Pincode     *string        `json:"pincode,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Email       *string        `json:"email,omitempty" validate:"omitempty,email"`
	Website     *string        `json:"website,omitempty"`
	Image       *string        `json:"image,omitempty"`
	Status      *entity.Status `json:"status,omitempty"`
}

// --- Output DTOs ---

// ApproveAllOutput reports the result of a bulk approval run.
type ApproveAllOutput struct {
	Count   int64  `json:"count"`
	Message string `json:"message"`
}

// BusinessUsecase defines the interface for listing-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type BusinessUsecase interface {
	// ListBusinesses returns every listing regardless of status for the
	// admin dashboard.
	ListBusinesses(ctx context.Context, caller authz.Caller) ([]*entity.Business, error)

	// GetBusiness returns a single listing by ID.
	GetBusiness(ctx context.Context, id entity.ID) (*entity.Business, error)

	// GetTopRated returns the highest-rated approved listings.
	GetTopRated(ctx context.Context, limit int) ([]*entity.Business, error)

	// GetByCategory returns approved listings in a category.
	GetByCategory(ctx context.Context, categoryID entity.ID) ([]*entity.Business, error)

	// SearchByName returns approved listings whose name matches the query.
	SearchByName(ctx context.Context, query string) ([]*entity.Business, error)

	// FilterByRating returns approved listings at or above the given rating.
	FilterByRating(ctx context.Context, minRating float64) ([]*entity.Business, error)

	// GetMyBusinesses returns the caller's own listings, any status.
	GetMyBusinesses(ctx context.Context, caller authz.Caller) ([]*entity.Business, error)

	// GetBusinessForEdit returns a listing for the owner's edit form. Only
	// the owner may fetch it; admins have no override here.
	GetBusinessForEdit(ctx context.Context, caller authz.Caller, id entity.ID) (*entity.Business, error)

	// GetPendingBusinesses returns listings awaiting approval.
	GetPendingBusinesses(ctx context.Context, caller authz.Caller) ([]*entity.Business, error)

	// CreateBusiness registers a new listing in pending status.
	CreateBusiness(ctx context.Context, caller authz.Caller, input CreateBusinessInput) (*entity.Business, error)

	// UpdateBusiness applies a partial update and resolves the resulting status.
	UpdateBusiness(ctx context.Context, caller authz.Caller, id entity.ID, input UpdateBusinessInput) (*entity.Business, error)

	// DeleteBusiness removes a listing.
	DeleteBusiness(ctx context.Context, caller authz.Caller, id entity.ID) error

	// ApproveAllPending flips every pending listing to approved in one transaction.
	ApproveAllPending(ctx context.Context, caller authz.Caller) (*ApproveAllOutput, error)

	// GenerateShareQR renders a QR code linking to a listing.
	GenerateShareQR(ctx context.Context, id entity.ID) ([]byte, error)
}
