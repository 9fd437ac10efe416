package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/domain/approval"
	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/domain/service"
	"bizdir/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	categoryRepo repository.CategoryRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	CategoryRepo repository.CategoryRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService. It receives all dependencies as interfaces.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		categoryRepo: params.CategoryRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBusinesses returns every listing regardless of status. The full list
// includes the moderation queue, so it is gated like the queue itself.
func (srv *businessService) ListBusinesses(ctx context.Context, caller authz.Caller) ([]*entity.Business, error) {
	if err := authorize(caller, 0, authz.ActionApproveQueue); err != nil {
		return nil, err
	}

	businesses, err := srv.businessRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// GetBusiness returns a single listing by ID.
func (srv *businessService) GetBusiness(ctx context.Context, id entity.ID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrBusinessNotFound.WrapMessage(fmt.Sprintf("business %s not found", id))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get business")
	}

	return business, nil
}

// GetTopRated returns the highest-rated approved listings.
func (srv *businessService) GetTopRated(ctx context.Context, limit int) ([]*entity.Business, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	}

	businesses, err := srv.businessRepo.FindTopRated(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get top rated businesses")
	}

	return businesses, nil
}

const defaultTopRatedLimit = 6

// GetByCategory returns approved listings in a category.
func (srv *businessService) GetByCategory(ctx context.Context, categoryID entity.ID) ([]*entity.Business, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage(fmt.Sprintf("category %s not found", categoryID))
		}

		return nil, errors.Wrap(err, "failed to check category")
	}

	businesses, err := srv.businessRepo.FindApprovedByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get businesses by category")
	}

	return businesses, nil
}

// SearchByName returns approved listings whose name matches the query.
func (srv *businessService) SearchByName(ctx context.Context, query string) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.SearchApprovedByName(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	return businesses, nil
}

// FilterByRating returns approved listings at or above the given rating.
func (srv *businessService) FilterByRating(ctx context.Context, minRating float64) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.FilterApprovedByRating(ctx, minRating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter businesses by rating")
	}

	return businesses, nil
}

// GetMyBusinesses returns the caller's own listings, any status.
func (srv *businessService) GetMyBusinesses(ctx context.Context, caller authz.Caller) ([]*entity.Business, error) {
	if err := authorize(caller, caller.ID, authz.ActionReadOwn); err != nil {
		return nil, err
	}

	businesses, err := srv.businessRepo.FindByOwner(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get own businesses")
	}

	return businesses, nil
}

// GetBusinessForEdit returns a listing for the owner's edit form. The
// read-own rule applies to the record's owner, so an admin fetching someone
// else's edit form is refused.
func (srv *businessService) GetBusinessForEdit(ctx context.Context, caller authz.Caller, id entity.ID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrBusinessNotFound.WrapMessage(fmt.Sprintf("business %s not found", id))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get business for edit")
	}

	if err := authorize(caller, business.OwnerID, authz.ActionReadOwn); err != nil {
		return nil, err
	}

	return business, nil
}

// GetPendingBusinesses returns listings awaiting approval.
func (srv *businessService) GetPendingBusinesses(ctx context.Context, caller authz.Caller) ([]*entity.Business, error) {
	if err := authorize(caller, 0, authz.ActionApproveQueue); err != nil {
		return nil, err
	}

	businesses, err := srv.businessRepo.FindPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pending businesses")
	}

	return businesses, nil
}

// CreateBusiness registers a new listing. New listings always start pending;
// the submitted payload cannot pick its own moderation state.
func (srv *businessService) CreateBusiness(ctx context.Context, caller authz.Caller, input usecase.CreateBusinessInput) (*entity.Business, error) {
	if err := authorize(caller, caller.ID, authz.ActionCreateAsOwner); err != nil {
		return nil, err
	}

	ownerID := input.OwnerID
	if ownerID.IsZero() {
		ownerID = caller.ID
	}
	if ownerID != caller.ID {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot create a listing for another owner")
	}

	srv.log(ctx).Info("Creating business listing", slog.Any("ownerID", ownerID), slog.String("name", input.Name))

	business := &entity.Business{
		OwnerID:     ownerID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Pincode:     input.Pincode,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
		Image:       input.Image,
		Status:      entity.StatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage(fmt.Sprintf("category %s not found", input.CategoryID))
			}

			return errors.Wrap(err, "failed to check category")
		}

		if err := repoFactory.BusinessRepo().Create(ctx, business); err != nil {
			return errors.Wrap(err, "failed to create business")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create business listing", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Business listing created", slog.Any("businessID", business.ID))

	return business, nil
}

// UpdateBusiness applies a partial update and resolves the resulting moderation
// status inside a single transaction, so the read, the transition, and the
// write observe one consistent record.
func (srv *businessService) UpdateBusiness(ctx context.Context, caller authz.Caller, id entity.ID, input usecase.UpdateBusinessInput) (*entity.Business, error) {
	var updated entity.Business
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		current, err := businessRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound.WrapMessage(fmt.Sprintf("business %s not found", id))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load business for update")
		}

		if err := authorize(caller, current.OwnerID, authz.ActionUpdate); err != nil {
			return err
		}

		if input.CategoryID != nil {
			if _, err := repoFactory.CategoryRepo().FindByID(ctx, *input.CategoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrCategoryNotFound.WrapMessage(fmt.Sprintf("category %s not found", *input.CategoryID))
				}

				return errors.Wrap(err, "failed to check category")
			}
		}

		change := changeFromInput(input)
		updated = approval.Resolve(current, change, caller.Role)

		if updated.Status != current.Status {
			srv.log(ctx).Info("Business moderation status changed",
				slog.Any("businessID", id),
				slog.String("from", current.Status.String()),
				slog.String("to", updated.Status.String()),
				slog.String("editorRole", caller.Role.String()))
		}

		if err := businessRepo.Update(ctx, &updated); err != nil {
			return errors.Wrap(err, "failed to update business")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute business update transaction", slog.Any("businessID", id), slog.Any("error", err))

		return nil, err
	}

	return &updated, nil
}

// changeFromInput maps the transport-level partial update onto the moderation
// machine's change set.
func changeFromInput(input usecase.UpdateBusinessInput) approval.Change {
	return approval.Change{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Pincode:     input.Pincode,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
		Image:       input.Image,
		Status:      input.Status,
	}
}

// DeleteBusiness removes a listing. Deleting a pending listing is how an
// admin rejects it; there is no separate rejected state.
func (srv *businessService) DeleteBusiness(ctx context.Context, caller authz.Caller, id entity.ID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		current, err := businessRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound.WrapMessage(fmt.Sprintf("business %s not found", id))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load business for delete")
		}

		if err := authorize(caller, current.OwnerID, authz.ActionDelete); err != nil {
			return err
		}

		if err := businessRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete business")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute business delete transaction", slog.Any("businessID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Business listing deleted", slog.Any("businessID", id))

	return nil
}

// ApproveAllPending flips every pending listing to approved in one statement
// inside one transaction. Running it with an empty queue succeeds with a zero
// count, and running it twice approves nothing new.
func (srv *businessService) ApproveAllPending(ctx context.Context, caller authz.Caller) (*usecase.ApproveAllOutput, error) {
	if err := authorize(caller, 0, authz.ActionApproveQueue); err != nil {
		return nil, err
	}

	var count int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		count, err = repoFactory.BusinessRepo().ApproveAllPending(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to approve pending businesses")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute bulk approval transaction", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Bulk approval completed", slog.Int64("count", count))

	return &usecase.ApproveAllOutput{
		Count:   count,
		Message: fmt.Sprintf("%d businesses approved successfully", count),
	}, nil
}

// GenerateShareQR renders a QR code linking to a listing.
func (srv *businessService) GenerateShareQR(ctx context.Context, id entity.ID) ([]byte, error) {
	business, err := srv.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	if business.Status != entity.StatusApproved {
		return nil, domainerrors.ErrBusinessNotApproved.WrapMessage("cannot share a listing awaiting approval")
	}

	png, err := srv.qrService.GenerateShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
