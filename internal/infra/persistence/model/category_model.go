package model

import "bizdir/internal/domain/entity"

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;unique"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts the database model to a domain entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:          entity.ID(m.ID),
		Name:        m.Name,
		Description: m.Description,
	}
}

// CategoryModelFromEntity converts a domain entity to the database model.
func CategoryModelFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID.Int64(),
		Name:        category.Name,
		Description: category.Description,
	}
}
