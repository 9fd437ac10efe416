package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	mockRepo "bizdir/internal/mocks/repository"
	"bizdir/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return categoryServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_ListCategories(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{
		{ID: 1, Name: "Cafes"},
		{ID: 2, Name: "Plumbers"},
	}, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryService_CreateCategory_AdminOnly(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Category")).
				RunAndReturn(func(_ context.Context, c *entity.Category) error {
					c.ID = 3
					return nil
				})

			return fn(mockFactory)
		})

	category, err := fx.service.CreateCategory(ctx, admin, usecase.CreateCategoryInput{Name: "Bakeries"})

	require.NoError(t, err)
	assert.Equal(t, entity.ID(3), category.ID)
	assert.Equal(t, "Bakeries", category.Name)
}

func TestCategoryService_CreateCategory_OwnerForbidden(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	owner := authz.Caller{ID: 7, Role: entity.RoleOwner}

	_, err := fx.service.CreateCategory(ctx, owner, usecase.CreateCategoryInput{Name: "Bakeries"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().FindByID(ctx, entity.ID(404)).Return(nil, repository.ErrCategoryNotFound)

			return fn(mockFactory)
		})

	name := "Renamed"
	_, err := fx.service.UpdateCategory(ctx, admin, 404, usecase.UpdateCategoryInput{Name: &name})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().FindByID(ctx, entity.ID(2)).Return(&entity.Category{ID: 2, Name: "Plumbers"}, nil)
			mockCategoryRepo.EXPECT().Delete(ctx, entity.ID(2)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteCategory(ctx, admin, 2)

	require.NoError(t, err)
}
