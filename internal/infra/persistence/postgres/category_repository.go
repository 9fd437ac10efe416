package postgres

import (
	"context"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/repository"
	"bizdir/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository is the GORM implementation of repository.CategoryRepository.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository bound to the given DB handle.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAll retrieves all categories ordered by id.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var models []*model.CategoryModel
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	entities := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		entities = append(entities, m.ToEntity())
	}

	return entities, nil
}

// FindByID retrieves a single category by its unique ID.
func (r *categoryRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Category, error) {
	var m model.CategoryModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return m.ToEntity(), nil
}

// Create persists a new category.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	m := model.CategoryModelFromEntity(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create category")
	}

	category.ID = entity.ID(m.ID)

	return nil
}

// Update modifies an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	m := model.CategoryModelFromEntity(category)
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id").
		Updates(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category.
func (r *categoryRepository) Delete(ctx context.Context, id entity.ID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}
