package postgres

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository is the GORM implementation of repository.ReviewRepository.
// businesses.avg_rating is maintained by a trigger on the reviews table, so
// none of these methods touch the business record.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository bound to the given DB handle.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByBusiness retrieves all reviews for a business, newest first, joined
// with the reviewer's name.
func (r *reviewRepository) FindByBusiness(ctx context.Context, businessID entity.ID) ([]*entity.Review, error) {
	var models []*model.ReviewModel
	err := r.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("reviews.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Where("reviews.business_id = ?", businessID.Int64()).
		Order("reviews.created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by business")
	}

	return toReviewEntities(models), nil
}

// FindByUser retrieves all reviews written by a user, newest first.
func (r *reviewRepository) FindByUser(ctx context.Context, userID entity.ID) ([]*entity.Review, error) {
	var models []*model.ReviewModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by user")
	}

	return toReviewEntities(models), nil
}

// FindByID retrieves a single review by its unique ID.
func (r *reviewRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Review, error) {
	var m model.ReviewModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return m.ToEntity(), nil
}

// Create persists a new review.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := model.ReviewModelFromEntity(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "rating outside the allowed range")
		}

		return errors.Wrap(err, "failed to create review")
	}

	review.ID = entity.ID(m.ID)
	review.CreatedAt = m.CreatedAt

	return nil
}

// Update modifies the rating and comment of an existing review.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := r.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID.Int64()).
		Updates(map[string]any{
			"rating":  review.Rating,
			"comment": review.Comment,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "rating outside the allowed range")
		}

		return errors.Wrap(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review.
func (r *reviewRepository) Delete(ctx context.Context, id entity.ID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func toReviewEntities(models []*model.ReviewModel) []*entity.Review {
	entities := make([]*entity.Review, 0, len(models))
	for _, m := range models {
		entities = append(entities, m.ToEntity())
	}

	return entities
}
