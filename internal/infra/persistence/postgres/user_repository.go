package postgres

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository is the GORM implementation of repository.UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to the given DB handle.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (r *userRepository) FindByID(ctx context.Context, id entity.ID) (*entity.User, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return m.ToEntity(), nil
}

// FindByEmail retrieves a single user by their email address, including the
// stored password hash for credential checks.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return m.ToEntity(), nil
}

// Create persists a new user entity to the storage.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := model.UserModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = entity.ID(m.ID)
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := model.UserModelFromEntity(user)
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", m.ID).
		Select("name", "email", "phone", "role", "password_hash").
		Updates(m)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
