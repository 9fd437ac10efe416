package model

import "bizdir/internal/domain/entity"

// FavoriteModel mirrors the 'favorites' table. The (user_id, business_id)
// pair is unique so a user can bookmark a listing at most once.
type FavoriteModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	UserID     int64 `gorm:"not null;uniqueIndex:idx_favorites_user_business"`
	BusinessID int64 `gorm:"not null;uniqueIndex:idx_favorites_user_business"`

	// Listing summary joined from businesses for the favorites page.
	BusinessName string  `gorm:"->;-:migration"`
	City         string  `gorm:"->;-:migration"`
	State        string  `gorm:"->;-:migration"`
	Image        string  `gorm:"->;-:migration"`
	AvgRating    float64 `gorm:"->;-:migration"`
	CategoryName string  `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// ToEntity converts the database model to a domain entity.
func (m *FavoriteModel) ToEntity() *entity.Favorite {
	return &entity.Favorite{
		ID:           entity.ID(m.ID),
		UserID:       entity.ID(m.UserID),
		BusinessID:   entity.ID(m.BusinessID),
		BusinessName: m.BusinessName,
		City:         m.City,
		State:        m.State,
		Image:        m.Image,
		AvgRating:    m.AvgRating,
		CategoryName: m.CategoryName,
	}
}
