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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyFavorites returns the caller's favorited listings.
func (srv *favoriteService) GetMyFavorites(ctx context.Context, caller authz.Caller) ([]*entity.Favorite, error) {
	if err := authorize(caller, caller.ID, authz.ActionReadOwn); err != nil {
		return nil, err
	}

	favorites, err := srv.favoriteRepo.FindByUser(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get favorites")
	}

	return favorites, nil
}

// AddFavorite marks a listing as a favorite. Adding the same listing twice is
// absorbed by the storage layer's conflict handling and reported as not created.
func (srv *favoriteService) AddFavorite(ctx context.Context, caller authz.Caller, businessID entity.ID) (*usecase.AddFavoriteOutput, error) {
	if !caller.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("authentication required to add a favorite")
	}

	var created bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.BusinessRepo().FindByID(ctx, businessID)
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound.WrapMessage(fmt.Sprintf("business %s not found", businessID))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load business for favorite")
		}

		if business.Status != entity.StatusApproved {
			return domainerrors.ErrBusinessNotApproved.WrapMessage(fmt.Sprintf("business %s is not approved", businessID))
		}

		created, err = repoFactory.FavoriteRepo().Add(ctx, caller.ID, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to add favorite")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add favorite", slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("userID", caller.ID), slog.Any("businessID", businessID), slog.Bool("created", created))

	return &usecase.AddFavoriteOutput{Created: created}, nil
}

// RemoveFavorite unmarks a favorited listing.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, caller authz.Caller, businessID entity.ID) error {
	if !caller.Authenticated() {
		return domainerrors.ErrUnauthenticated.WrapMessage("authentication required to remove a favorite")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.FavoriteRepo().Remove(ctx, caller.ID, businessID)
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound.WrapMessage(fmt.Sprintf("business %s is not in favorites", businessID))
		}
		if err != nil {
			return errors.Wrap(err, "failed to remove favorite")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to remove favorite", slog.Any("businessID", businessID), slog.Any("error", err))

		return err
	}

	return nil
}
