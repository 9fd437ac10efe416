// Package model contains the GORM table mappings for the PostgreSQL schema.
// Conversion to and from domain entities happens here so no GORM tag ever
// leaks into the domain layer.
package model

import (
	"time"

	"bizdir/internal/domain/entity"
)

// BusinessModel mirrors the 'businesses' table. AvgRating is recomputed by a
// database trigger whenever reviews change, so writes from Go always leave
// the stored value alone.
type BusinessModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64  `gorm:"not null;index"`
	CategoryID  int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Address     string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(100)"`
	State       string `gorm:"type:varchar(100)"`
	Pincode     string `gorm:"type:varchar(20)"`
	Phone       string `gorm:"type:varchar(30)"`
	Email       string `gorm:"type:varchar(255)"`
	Website     string `gorm:"type:varchar(255)"`
	Image       string `gorm:"type:varchar(512)"`
	Status      string `gorm:"type:varchar(20);not null;default:pending;index"`
	AvgRating   float64 `gorm:"type:numeric(3,2);not null;default:0;->"`
	DateAdded   time.Time `gorm:"autoCreateTime"`

	// Joined columns populated by list queries, never stored.
	CategoryName  string `gorm:"->;-:migration"`
	FavoriteCount int64  `gorm:"->;-:migration"`
	ReviewCount   int64  `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// ToEntity converts the database model to a domain entity.
func (m *BusinessModel) ToEntity() *entity.Business {
	return &entity.Business{
		ID:            entity.ID(m.ID),
		OwnerID:       entity.ID(m.OwnerID),
		CategoryID:    entity.ID(m.CategoryID),
		Name:          m.Name,
		Description:   m.Description,
		Address:       m.Address,
		City:          m.City,
		State:         m.State,
		Pincode:       m.Pincode,
		Phone:         m.Phone,
		Email:         m.Email,
		Website:       m.Website,
		Image:         m.Image,
		Status:        entity.Status(m.Status),
		AvgRating:     m.AvgRating,
		DateAdded:     m.DateAdded,
		CategoryName:  m.CategoryName,
		FavoriteCount: m.FavoriteCount,
		ReviewCount:   m.ReviewCount,
	}
}

// BusinessModelFromEntity converts a domain entity to the database model.
func BusinessModelFromEntity(business *entity.Business) *BusinessModel {
	return &BusinessModel{
		ID:          business.ID.Int64(),
		OwnerID:     business.OwnerID.Int64(),
		CategoryID:  business.CategoryID.Int64(),
		Name:        business.Name,
		Description: business.Description,
		Address:     business.Address,
		City:        business.City,
		State:       business.State,
		Pincode:     business.Pincode,
		Phone:       business.Phone,
		Email:       business.Email,
		Website:     business.Website,
		Image:       business.Image,
		Status:      business.Status.String(),
		DateAdded:   business.DateAdded,
	}
}
