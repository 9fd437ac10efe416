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
	mockSrv "bizdir/internal/mocks/service"
	"bizdir/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	txManager    *mockRepo.MockTransactionManager
	businessRepo *mockRepo.MockBusinessRepository
	categoryRepo *mockRepo.MockCategoryRepository
	qrService    *mockSrv.MockQRCodeService
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	qrService := mockSrv.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBusinessService(BusinessServiceParams{
		TxManager:    txManager,
		BusinessRepo: businessRepo,
		CategoryRepo: categoryRepo,
		QRService:    qrService,
		Logger:       logger,
	})

	return businessServiceFixtures{
		service:      service,
		txManager:    txManager,
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		qrService:    qrService,
	}
}

func approvedBusiness(id, ownerID entity.ID) *entity.Business {
	return &entity.Business{
		ID:          id,
		OwnerID:     ownerID,
		CategoryID:  5,
		Name:        "Blue Bottle Cafe",
		Description: "Coffee and pastries",
		Phone:       "555-0100",
		Status:      entity.StatusApproved,
	}
}

func strPtr(s string) *string { return &s }

func statusPtr(s entity.Status) *entity.Status { return &s }

func expectUpdateTx(t *testing.T, fx businessServiceFixtures, ctx context.Context, current *entity.Business, captured **entity.Business) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
			mockBusinessRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Business")).
				RunAndReturn(func(_ context.Context, b *entity.Business) error {
					*captured = b
					return nil
				})

			return fn(mockFactory)
		})
}

func TestBusinessService_UpdateBusiness_OwnerRenameGoesPending(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := entity.ID(7)
	current := approvedBusiness(42, ownerID)
	caller := authz.Caller{ID: ownerID, Role: entity.RoleOwner}

	var saved *entity.Business
	expectUpdateTx(t, fx, ctx, current, &saved)

	updated, err := fx.service.UpdateBusiness(ctx, caller, current.ID, usecase.UpdateBusinessInput{
		Name: strPtr("Green Bottle Cafe"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Green Bottle Cafe", updated.Name)
	assert.Equal(t, entity.StatusPending, updated.Status)
	require.NotNil(t, saved)
	assert.Equal(t, entity.StatusPending, saved.Status)
}

func TestBusinessService_UpdateBusiness_OwnerMinorEditKeepsStatus(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := entity.ID(7)
	current := approvedBusiness(42, ownerID)
	caller := authz.Caller{ID: ownerID, Role: entity.RoleOwner}

	var saved *entity.Business
	expectUpdateTx(t, fx, ctx, current, &saved)

	updated, err := fx.service.UpdateBusiness(ctx, caller, current.ID, usecase.UpdateBusinessInput{
		Phone: strPtr("555-0199"),
	})

	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, entity.StatusApproved, updated.Status)
}

func TestBusinessService_UpdateBusiness_OwnerSuppliedStatusIgnored(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := entity.ID(7)
	current := approvedBusiness(42, ownerID)
	caller := authz.Caller{ID: ownerID, Role: entity.RoleOwner}

	var saved *entity.Business
	expectUpdateTx(t, fx, ctx, current, &saved)

	// Owner tries to go pending -> approved while renaming. The machine wins.
	updated, err := fx.service.UpdateBusiness(ctx, caller, current.ID, usecase.UpdateBusinessInput{
		Name:   strPtr("Another Name"),
		Status: statusPtr(entity.StatusApproved),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, updated.Status)
}

func TestBusinessService_UpdateBusiness_AdminStatusPassthrough(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	current := approvedBusiness(42, 7)
	current.Status = entity.StatusPending
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	var saved *entity.Business
	expectUpdateTx(t, fx, ctx, current, &saved)

	updated, err := fx.service.UpdateBusiness(ctx, admin, current.ID, usecase.UpdateBusinessInput{
		Status: statusPtr(entity.StatusApproved),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, updated.Status)
}

func TestBusinessService_UpdateBusiness_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	caller := authz.Caller{ID: 7, Role: entity.RoleOwner}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, entity.ID(404)).Return(nil, repository.ErrBusinessNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateBusiness(ctx, caller, 404, usecase.UpdateBusinessInput{
		Name: strPtr("whatever"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_UpdateBusiness_OtherOwnerForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	current := approvedBusiness(42, 7)
	intruder := authz.Caller{ID: 8, Role: entity.RoleOwner}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateBusiness(ctx, intruder, current.ID, usecase.UpdateBusinessInput{
		Name: strPtr("hijack"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_UpdateBusiness_Unauthenticated(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	current := approvedBusiness(42, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateBusiness(ctx, authz.Anonymous(), current.ID, usecase.UpdateBusinessInput{
		Name: strPtr("anon edit"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestBusinessService_CreateBusiness_StartsPending(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	owner := authz.Caller{ID: 7, Role: entity.RoleOwner}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockCategoryRepo.EXPECT().FindByID(ctx, entity.ID(5)).Return(&entity.Category{ID: 5, Name: "Cafes"}, nil)
			mockBusinessRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Business")).
				RunAndReturn(func(_ context.Context, b *entity.Business) error {
					b.ID = 42
					return nil
				})

			return fn(mockFactory)
		})

	business, err := fx.service.CreateBusiness(ctx, owner, usecase.CreateBusinessInput{
		CategoryID: 5,
		Name:       "Blue Bottle Cafe",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ID(42), business.ID)
	assert.Equal(t, owner.ID, business.OwnerID)
	assert.Equal(t, entity.StatusPending, business.Status)
}

func TestBusinessService_CreateBusiness_ViewerForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}

	_, err := fx.service.CreateBusiness(ctx, viewer, usecase.CreateBusinessInput{
		CategoryID: 5,
		Name:       "Sneaky Listing",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_ApproveAllPending_AdminCountReported(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().ApproveAllPending(ctx).Return(3, nil)

			return fn(mockFactory)
		})

	out, err := fx.service.ApproveAllPending(ctx, admin)

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Count)
	assert.Equal(t, "3 businesses approved successfully", out.Message)
}

func TestBusinessService_ApproveAllPending_EmptyQueueSucceeds(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().ApproveAllPending(ctx).Return(0, nil)

			return fn(mockFactory)
		})

	out, err := fx.service.ApproveAllPending(ctx, admin)

	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Count)
}

func TestBusinessService_ApproveAllPending_OwnerForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	owner := authz.Caller{ID: 7, Role: entity.RoleOwner}

	_, err := fx.service.ApproveAllPending(ctx, owner)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_GetPendingBusinesses_AdminOnly(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	pending := []*entity.Business{
		{ID: 1, Status: entity.StatusPending},
		{ID: 2, Status: entity.StatusPending},
	}
	fx.businessRepo.EXPECT().FindPending(ctx).Return(pending, nil)

	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}
	got, err := fx.service.GetPendingBusinesses(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	owner := authz.Caller{ID: 7, Role: entity.RoleOwner}
	_, err = fx.service.GetPendingBusinesses(ctx, owner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_GetMyBusinesses_RequiresIdentity(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	_, err := fx.service.GetMyBusinesses(ctx, authz.Anonymous())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	owner := authz.Caller{ID: 7, Role: entity.RoleOwner}
	fx.businessRepo.EXPECT().FindByOwner(ctx, owner.ID).Return([]*entity.Business{{ID: 42, OwnerID: 7}}, nil)

	got, err := fx.service.GetMyBusinesses(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBusinessService_DeleteBusiness_AdminOverride(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	current := approvedBusiness(42, 7)
	current.Status = entity.StatusPending
	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
			mockBusinessRepo.EXPECT().Delete(ctx, current.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteBusiness(ctx, admin, current.ID)

	require.NoError(t, err)
}

func TestBusinessService_GenerateShareQR(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	current := approvedBusiness(42, 7)

	fx.businessRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
	fx.qrService.EXPECT().GenerateShareQR(current.ID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.GenerateShareQR(ctx, current.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestBusinessService_GetTopRated_DefaultLimit(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindTopRated(ctx, 6).Return([]*entity.Business{}, nil)

	_, err := fx.service.GetTopRated(ctx, 0)

	require.NoError(t, err)
}

func TestBusinessService_GetBusinessForEdit_OwnerOnlyNoAdminOverride(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	current := approvedBusiness(42, 7)

	fx.businessRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil).Times(3)

	owner := authz.Caller{ID: 7, Role: entity.RoleOwner}
	got, err := fx.service.GetBusinessForEdit(ctx, owner, current.ID)
	require.NoError(t, err)
	assert.Equal(t, current.ID, got.ID)

	other := authz.Caller{ID: 8, Role: entity.RoleOwner}
	_, err = fx.service.GetBusinessForEdit(ctx, other, current.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}
	_, err = fx.service.GetBusinessForEdit(ctx, admin, current.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_GetBusinessForEdit_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().FindByID(ctx, entity.ID(404)).Return(nil, repository.ErrBusinessNotFound)

	owner := authz.Caller{ID: 7, Role: entity.RoleOwner}
	_, err := fx.service.GetBusinessForEdit(ctx, owner, 404)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_ListBusinesses_AdminOnly(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	all := []*entity.Business{
		{ID: 1, Status: entity.StatusPending},
		{ID: 2, Status: entity.StatusApproved},
	}
	fx.businessRepo.EXPECT().FindAll(ctx).Return(all, nil)

	admin := authz.Caller{ID: 99, Role: entity.RoleAdmin}
	got, err := fx.service.ListBusinesses(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	viewer := authz.Caller{ID: 3, Role: entity.RoleViewer}
	_, err = fx.service.ListBusinesses(ctx, viewer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_GenerateShareQR_PendingRefused(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	current := approvedBusiness(42, 7)
	current.Status = entity.StatusPending

	fx.businessRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)

	_, err := fx.service.GenerateShareQR(ctx, current.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotApproved))
}
