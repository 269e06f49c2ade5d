// Package model holds the GORM row structs of the PostgreSQL store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DishModel is the GORM-specific struct for the 'dishes' table.
type DishModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(200);not null"`
	Restaurant       *string   `gorm:"column:restaurant;type:varchar(200);index"`
	Place            *string   `gorm:"type:varchar(120);index"`
	Occasion         *string   `gorm:"type:varchar(32)"`
	AtmosphereRating *int      `gorm:"type:smallint;check:atmosphere_rating BETWEEN 1 AND 5"`
	Rating           *int      `gorm:"type:smallint;check:rating BETWEEN 1 AND 5"`
	Notes            string    `gorm:"type:text"`
	ImageURL         string    `gorm:"column:image_url;type:text"`
	CreatedAt        time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}
