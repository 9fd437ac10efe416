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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReviewRepo   repository.ReviewRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		reviewRepo:   params.ReviewRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBusinessReviews returns all reviews for a listing, newest first.
func (srv *reviewService) GetBusinessReviews(ctx context.Context, businessID entity.ID) ([]*entity.Review, error) {
	if _, err := srv.businessRepo.FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage(fmt.Sprintf("business %s not found", businessID))
		}

		return nil, errors.Wrap(err, "failed to check business")
	}

	reviews, err := srv.reviewRepo.FindByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get business reviews")
	}

	return reviews, nil
}

// GetMyReviews returns the caller's own reviews.
func (srv *reviewService) GetMyReviews(ctx context.Context, caller authz.Caller) ([]*entity.Review, error) {
	if err := authorize(caller, caller.ID, authz.ActionReadOwn); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.FindByUser(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get own reviews")
	}

	return reviews, nil
}

// CreateReview posts a review. Only approved listings are reviewable; the
// listing's average rating is recomputed by the database, not here.
func (srv *reviewService) CreateReview(ctx context.Context, caller authz.Caller, input usecase.CreateReviewInput) (*entity.Review, error) {
	if !caller.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("authentication required to post a review")
	}

	review := &entity.Review{
		UserID:     caller.ID,
		BusinessID: input.BusinessID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.BusinessRepo().FindByID(ctx, input.BusinessID)
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound.WrapMessage(fmt.Sprintf("business %s not found", input.BusinessID))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load business for review")
		}

		if business.Status != entity.StatusApproved {
			return domainerrors.ErrBusinessNotApproved.WrapMessage(fmt.Sprintf("business %s is not approved", input.BusinessID))
		}

		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create review", slog.Any("businessID", input.BusinessID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID), slog.Any("businessID", review.BusinessID))

	return review, nil
}

// UpdateReview modifies the caller's review.
func (srv *reviewService) UpdateReview(ctx context.Context, caller authz.Caller, id entity.ID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		current, err := reviewRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound.WrapMessage(fmt.Sprintf("review %s not found", id))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load review for update")
		}

		if err := authorize(caller, current.UserID, authz.ActionUpdate); err != nil {
			return err
		}

		if input.Rating != nil {
			current.Rating = *input.Rating
		}
		if input.Comment != nil {
			current.Comment = *input.Comment
		}

		if err := reviewRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		updated = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute review update transaction", slog.Any("reviewID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteReview removes a review.
func (srv *reviewService) DeleteReview(ctx context.Context, caller authz.Caller, id entity.ID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		current, err := reviewRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound.WrapMessage(fmt.Sprintf("review %s not found", id))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load review for delete")
		}

		if err := authorize(caller, current.UserID, authz.ActionDelete); err != nil {
			return err
		}

		if err := reviewRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute review delete transaction", slog.Any("reviewID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", id))

	return nil
}
