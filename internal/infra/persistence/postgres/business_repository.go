package postgres

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessListColumns joins the category name into every listing row; the
// directory pages always render it next to the business name.
const businessListColumns = "businesses.*, categories.name AS category_name"

// businessRepository is the GORM implementation of repository.BusinessRepository.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a business repository bound to the given DB handle,
// which may be a plain connection or an open transaction.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Select(businessListColumns).
		Joins("LEFT JOIN categories ON categories.id = businesses.category_id")
}

// FindByID retrieves a single business by its unique ID.
func (r *businessRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Business, error) {
	var m model.BusinessModel
	err := r.listQuery(ctx).
		Where("businesses.id = ?", id.Int64()).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrBusinessNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return m.ToEntity(), nil
}

// FindAll retrieves every business in the directory, any status. This backs
// the admin dashboard, so the moderation queue floats to the top.
func (r *businessRepository) FindAll(ctx context.Context) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := r.listQuery(ctx).
		Order("businesses.status DESC, businesses.date_added DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return toBusinessEntities(models), nil
}

// FindTopRated retrieves the highest-rated approved businesses.
func (r *businessRepository) FindTopRated(ctx context.Context, limit int) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := r.listQuery(ctx).
		Where("businesses.status = ?", entity.StatusApproved.String()).
		Order("businesses.avg_rating DESC, businesses.id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top rated businesses")
	}

	return toBusinessEntities(models), nil
}

// FindApprovedByCategory retrieves approved businesses in a category, best rated first.
func (r *businessRepository) FindApprovedByCategory(ctx context.Context, categoryID entity.ID) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := r.listQuery(ctx).
		Where("businesses.status = ? AND businesses.category_id = ?", entity.StatusApproved.String(), categoryID.Int64()).
		Order("businesses.avg_rating DESC, businesses.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by category")
	}

	return toBusinessEntities(models), nil
}

// SearchApprovedByName retrieves approved businesses whose name contains the
// given fragment, case-insensitively.
func (r *businessRepository) SearchApprovedByName(ctx context.Context, name string) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := r.listQuery(ctx).
		Where("businesses.status = ? AND businesses.name ILIKE ?", entity.StatusApproved.String(), "%"+name+"%").
		Order("businesses.avg_rating DESC, businesses.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses by name")
	}

	return toBusinessEntities(models), nil
}

// FilterApprovedByRating retrieves approved businesses rated at or above minRating.
func (r *businessRepository) FilterApprovedByRating(ctx context.Context, minRating float64) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := r.listQuery(ctx).
		Where("businesses.status = ? AND businesses.avg_rating >= ?", entity.StatusApproved.String(), minRating).
		Order("businesses.avg_rating DESC, businesses.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter businesses by rating")
	}

	return toBusinessEntities(models), nil
}

// FindByOwner retrieves all businesses registered by an owner, enriched with
// favorite and review counts for the owner's dashboard.
func (r *businessRepository) FindByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := r.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Select(businessListColumns+`,
			(SELECT COUNT(*) FROM favorites WHERE favorites.business_id = businesses.id) AS favorite_count,
			(SELECT COUNT(*) FROM reviews WHERE reviews.business_id = businesses.id) AS review_count`).
		Joins("LEFT JOIN categories ON categories.id = businesses.category_id").
		Where("businesses.owner_id = ?", ownerID.Int64()).
		Order("businesses.date_added DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by owner")
	}

	return toBusinessEntities(models), nil
}

// FindPending retrieves the moderation queue, oldest submissions first.
func (r *businessRepository) FindPending(ctx context.Context) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := r.listQuery(ctx).
		Where("businesses.status = ?", entity.StatusPending.String()).
		Order("businesses.date_added ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending businesses")
	}

	return toBusinessEntities(models), nil
}

// Create persists a new business entity to the storage.
func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	m := model.BusinessModelFromEntity(business)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to create business")
	}

	business.ID = entity.ID(m.ID)
	business.DateAdded = m.DateAdded

	return nil
}

// Update persists the full merged record produced by the approval workflow.
// avg_rating and date_added stay untouched; the column permissions on the
// model exclude them from writes.
func (r *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	m := model.BusinessModelFromEntity(business)
	result := r.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "date_added", "avg_rating", "category_name", "favorite_count", "review_count").
		Updates(m)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// Delete removes a business. The database cascades reviews and favorites.
func (r *businessRepository) Delete(ctx context.Context, id entity.ID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		Delete(&model.BusinessModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// ApproveAllPending transitions every pending business to approved as a
// single statement and returns the number of records transitioned.
func (r *businessRepository) ApproveAllPending(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("status = ?", entity.StatusPending.String()).
		Update("status", entity.StatusApproved.String())
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to approve pending businesses")
	}

	return result.RowsAffected, nil
}

func toBusinessEntities(models []*model.BusinessModel) []*entity.Business {
	entities := make([]*entity.Business, 0, len(models))
	for _, m := range models {
		entities = append(entities, m.ToEntity())
	}

	return entities
}
