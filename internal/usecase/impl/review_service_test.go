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

type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	txManager    *mockRepo.MockTransactionManager
	reviewRepo   *mockRepo.MockReviewRepository
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		TxManager:    txManager,
		ReviewRepo:   reviewRepo,
		BusinessRepo: businessRepo,
		Logger:       logger,
	})

	return reviewServiceFixtures{
		service:      service,
		txManager:    txManager,
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
	}
}

func TestReviewService_CreateReview_ApprovedBusiness(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, entity.ID(42)).Return(&entity.Business{
				ID:     42,
				Status: entity.StatusApproved,
			}, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				RunAndReturn(func(_ context.Context, r *entity.Review) error {
					r.ID = 1
					return nil
				})

			return fn(mockFactory)
		})

	review, err := fx.service.CreateReview(ctx, viewer, usecase.CreateReviewInput{
		BusinessID: 42,
		Rating:     5,
		Comment:    "Great coffee",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ID(1), review.ID)
	assert.Equal(t, viewer.ID, review.UserID)
}

func TestReviewService_CreateReview_PendingBusinessRejected(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, entity.ID(42)).Return(&entity.Business{
				ID:     42,
				Status: entity.StatusPending,
			}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateReview(ctx, viewer, usecase.CreateReviewInput{
		BusinessID: 42,
		Rating:     4,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotApproved))
}

func TestReviewService_CreateReview_Unauthenticated(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.CreateReview(context.Background(), authz.Anonymous(), usecase.CreateReviewInput{
		BusinessID: 42,
		Rating:     4,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestReviewService_UpdateReview_OtherUserForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	intruder := authz.Caller{ID: 4, Role: entity.RoleViewer}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, entity.ID(1)).Return(&entity.Review{
				ID:     1,
				UserID: 3,
				Rating: 5,
			}, nil)

			return fn(mockFactory)
		})

	rating := 1
	_, err := fx.service.UpdateReview(ctx, intruder, 1, usecase.UpdateReviewInput{Rating: &rating})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_DeleteReview_AdminOverride(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, entity.ID(1)).Return(&entity.Review{ID: 1, UserID: 3}, nil)
			mockReviewRepo.EXPECT().Delete(ctx, entity.ID(1)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteReview(ctx, admin, 1)

	require.NoError(t, err)
}

func TestReviewService_GetBusinessReviews_BusinessMissing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindByID(ctx, entity.ID(404)).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.GetBusinessReviews(ctx, 404)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}
