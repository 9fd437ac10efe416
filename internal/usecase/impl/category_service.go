package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns all categories.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory returns a single category by ID.
func (srv *categoryService) GetCategory(ctx context.Context, id entity.ID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.WrapMessage(fmt.Sprintf("category %s not found", id))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

// CreateCategory adds a new category. Admin only.
func (srv *categoryService) CreateCategory(ctx context.Context, caller authz.Caller, input usecase.CreateCategoryInput) (*entity.Category, error) {
	if err := authorize(caller, 0, authz.ActionManageCategories); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoryRepo().Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", category.Name))

	return category, nil
}

// UpdateCategory modifies an existing category. Admin only.
func (srv *categoryService) UpdateCategory(ctx context.Context, caller authz.Caller, id entity.ID, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	if err := authorize(caller, 0, authz.ActionManageCategories); err != nil {
		return nil, err
	}

	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		current, err := categoryRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage(fmt.Sprintf("category %s not found", id))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load category for update")
		}

		if input.Name != nil {
			current.Name = *input.Name
		}
		if input.Description != nil {
			current.Description = *input.Description
		}

		if err := categoryRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update category")
		}

		updated = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute category update transaction", slog.Any("categoryID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteCategory removes a category. Admin only.
func (srv *categoryService) DeleteCategory(ctx context.Context, caller authz.Caller, id entity.ID) error {
	if err := authorize(caller, 0, authz.ActionManageCategories); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage(fmt.Sprintf("category %s not found", id))
			}

			return errors.Wrap(err, "failed to load category for delete")
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute category delete transaction", slog.Any("categoryID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
