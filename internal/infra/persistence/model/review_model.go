package model

import (
	"time"

	"bizdir/internal/domain/entity"
)

// ReviewModel mirrors the 'reviews' table. A trigger on this table keeps
// businesses.avg_rating in sync on insert, update, and delete.
type ReviewModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"not null;index"`
	BusinessID int64  `gorm:"not null;index"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string `gorm:"type:text"`
	CreatedAt  time.Time

	// UserName is joined from users for display.
	UserName string `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToEntity converts the database model to a domain entity.
func (m *ReviewModel) ToEntity() *entity.Review {
	return &entity.Review{
		ID:         entity.ID(m.ID),
		UserID:     entity.ID(m.UserID),
		BusinessID: entity.ID(m.BusinessID),
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
		UserName:   m.UserName,
	}
}

// ReviewModelFromEntity converts a domain entity to the database model.
func ReviewModelFromEntity(review *entity.Review) *ReviewModel {
	return &ReviewModel{
		ID:         review.ID.Int64(),
		UserID:     review.UserID.Int64(),
		BusinessID: review.BusinessID.Int64(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}
