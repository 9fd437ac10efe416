package repository

import (
	"context"
	"errors"

	"bizdir/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when a create or update collides with the unique
// email constraint. The pre-flight lookup in the registration flow cannot
// rule this out under concurrent requests.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id entity.ID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, including
	// the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
