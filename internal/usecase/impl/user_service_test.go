package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSrv.MockPasswordHasher
	tokenService *mockSrv.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSrv.NewMockPasswordHasher(t)
	tokenService := mockSrv.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_DefaultsToViewer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, u *entity.User) error {
					u.ID = 10
					return nil
				})

			return fn(mockFactory)
		})

	out, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ID(10), out.User.ID)
	assert.Equal(t, entity.RoleViewer, out.User.Role)
	assert.Equal(t, "$2a$10$hash", out.User.PasswordHash)
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterUserInput{
		Name:     "Sneaky",
		Email:    "sneaky@example.com",
		Password: "hunter2hunter2",
		Role:     entity.RoleAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: 1}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "hunter2hunter2",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           10,
		Email:        "who@example.com",
		Role:         entity.RoleOwner,
		PasswordHash: "$2a$10$hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "who@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("hunter2hunter2", "$2a$10$hash").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, user.Role).Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().GetTokenDuration().Return(time.Hour)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "who@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.AccessToken)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 10, Email: "who@example.com", PasswordHash: "$2a$10$hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "who@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "who@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_UpdateProfile_PartialMerge(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	current := &entity.User{ID: 10, Name: "Old Name", Phone: "555-0100"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, entity.ID(10)).Return(current, nil)
			mockUserRepo.EXPECT().Update(ctx, current).Return(nil)

			return fn(mockFactory)
		})

	newName := "New Name"
	updated, err := fx.service.UpdateProfile(ctx, 10, usecase.UpdateProfileInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "555-0100", updated.Phone)
}
