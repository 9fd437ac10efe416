package usecase

import (
	"context"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
)

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	BusinessID entity.ID `json:"business_id"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
}

// UpdateReviewInput carries a partial review update. Nil fields are left unchanged.
type UpdateReviewInput struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	// GetBusinessReviews returns all reviews for a listing, newest first.
	GetBusinessReviews(ctx context.Context, businessID entity.ID) ([]*entity.Review, error)

	// GetMyReviews returns the caller's own reviews.
	GetMyReviews(ctx context.Context, caller authz.Caller) ([]*entity.Review, error)

	// CreateReview posts a review against an approved listing.
	CreateReview(ctx context.Context, caller authz.Caller, input CreateReviewInput) (*entity.Review, error)

	// UpdateReview modifies the caller's review.
	UpdateReview(ctx context.Context, caller authz.Caller, id entity.ID, input UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, caller authz.Caller, id entity.ID) error
}
