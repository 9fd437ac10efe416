package usecase

import (
	"context"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateCategoryInput carries a partial category update. Nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CategoryUsecase defines the interface for category management operations.
type CategoryUsecase interface {
	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory returns a single category by ID.
	GetCategory(ctx context.Context, id entity.ID) (*entity.Category, error)

	// CreateCategory adds a new category.
	CreateCategory(ctx context.Context, caller authz.Caller, input CreateCategoryInput) (*entity.Category, error)

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, caller authz.Caller, id entity.ID, input UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, caller authz.Caller, id entity.ID) error
}
