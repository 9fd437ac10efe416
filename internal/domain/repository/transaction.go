package repository

import (
	"context"
)

// TransactionManager provides an abstraction for executing operations within a transaction.
type TransactionManager interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, the transaction is committed.
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}

// RepositoryFactory provides access to repositories bound to a transaction.
type RepositoryFactory interface {
	// BusinessRepo returns a BusinessRepository that operates within the transaction.
	BusinessRepo() BusinessRepository

	// CategoryRepo returns a CategoryRepository that operates within the transaction.
	CategoryRepo() CategoryRepository

	// ReviewRepo returns a ReviewRepository that operates within the transaction.
	ReviewRepo() ReviewRepository

	// FavoriteRepo returns a FavoriteRepository that operates within the transaction.
	FavoriteRepo() FavoriteRepository

	// UserRepo returns a UserRepository that operates within the transaction.
	UserRepo() UserRepository
}
