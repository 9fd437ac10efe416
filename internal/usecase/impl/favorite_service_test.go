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

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	txManager    *mockRepo.MockTransactionManager
	favoriteRepo *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFavoriteService(FavoriteServiceParams{
		TxManager:    txManager,
		FavoriteRepo: favoriteRepo,
		Logger:       logger,
	})

	return favoriteServiceFixtures{
		service:      service,
		txManager:    txManager,
		favoriteRepo: favoriteRepo,
	}
}

func expectAddFavoriteTx(t *testing.T, fx favoriteServiceFixtures, ctx context.Context, business *entity.Business, created bool) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
			if business.Status == entity.StatusApproved {
				mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
				mockFavoriteRepo.EXPECT().Add(ctx, mock.AnythingOfType("entity.ID"), business.ID).Return(created, nil)
			}

			return fn(mockFactory)
		})
}

func TestFavoriteService_AddFavorite_Created(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}
	business := &entity.Business{ID: 42, Status: entity.StatusApproved}

	expectAddFavoriteTx(t, fx, ctx, business, true)

	out, err := fx.service.AddFavorite(ctx, viewer, business.ID)

	require.NoError(t, err)
	assert.True(t, out.Created)
}

func TestFavoriteService_AddFavorite_DuplicateIsNoOp(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}
	business := &entity.Business{ID: 42, Status: entity.StatusApproved}

	expectAddFavoriteTx(t, fx, ctx, business, false)

	out, err := fx.service.AddFavorite(ctx, viewer, business.ID)

	require.NoError(t, err)
	assert.False(t, out.Created)
}

func TestFavoriteService_AddFavorite_PendingBusinessRejected(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}
	business := &entity.Business{ID: 42, Status: entity.StatusPending}

	expectAddFavoriteTx(t, fx, ctx, business, false)

	_, err := fx.service.AddFavorite(ctx, viewer, business.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotApproved))
}

func TestFavoriteService_AddFavorite_Unauthenticated(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.AddFavorite(context.Background(), authz.Anonymous(), 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestFavoriteService_RemoveFavorite_Missing(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().FavoriteRepo().Return(mockFavoriteRepo)
			mockFavoriteRepo.EXPECT().Remove(ctx, viewer.ID, entity.ID(42)).Return(repository.ErrFavoriteNotFound)

			return fn(mockFactory)
		})

	err := fx.service.RemoveFavorite(ctx, viewer, 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteNotFound))
}

func TestFavoriteService_GetMyFavorites(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}

	fx.favoriteRepo.EXPECT().FindByUser(ctx, viewer.ID).Return([]*entity.Favorite{
		{ID: 1, UserID: 3, BusinessID: 42, BusinessName: "Blue Bottle Cafe"},
	}, nil)

	favorites, err := fx.service.GetMyFavorites(ctx, viewer)

	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Blue Bottle Cafe", favorites[0].BusinessName)
}
