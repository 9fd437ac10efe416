package postgres

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository is the GORM implementation of repository.FavoriteRepository.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a favorite repository bound to the given DB handle.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByUser retrieves all favorites of a user joined with listing summaries, newest first.
func (r *favoriteRepository) FindByUser(ctx context.Context, userID entity.ID) ([]*entity.Favorite, error) {
	var models []*model.FavoriteModel
	err := r.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Select(`favorites.*, businesses.name AS business_name, businesses.city, businesses.state,
			businesses.image, businesses.avg_rating, categories.name AS category_name`).
		Joins("JOIN businesses ON businesses.id = favorites.business_id").
		Joins("LEFT JOIN categories ON categories.id = businesses.category_id").
		Where("favorites.user_id = ?", userID.Int64()).
		Order("favorites.id DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by user")
	}

	entities := make([]*entity.Favorite, 0, len(models))
	for _, m := range models {
		entities = append(entities, m.ToEntity())
	}

	return entities, nil
}

// Add persists a favorite for the (user, business) pair. The unique index on
// the pair plus ON CONFLICT DO NOTHING makes a repeat add a no-op, reported
// through created=false.
func (r *favoriteRepository) Add(ctx context.Context, userID, businessID entity.ID) (bool, error) {
	m := &model.FavoriteModel{
		UserID:     userID.Int64(),
		BusinessID: businessID.Int64(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "business_id"}},
			DoNothing: true,
		}).
		Create(m)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrBusinessNotFound
		}

		return false, errors.Wrap(result.Error, "failed to add favorite")
	}

	return result.RowsAffected > 0, nil
}

// Remove deletes the favorite for the (user, business) pair.
func (r *favoriteRepository) Remove(ctx context.Context, userID, businessID entity.ID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND business_id = ?", userID.Int64(), businessID.Int64()).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}
