package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TastePreferenceModel is the GORM-specific struct for the 'taste_preferences' table.
type TastePreferenceModel struct {
	UserID          uuid.UUID      `gorm:"type:uuid;primary_key"`
	FavoriteCuisine pq.StringArray `gorm:"column:favorite_cuisine;type:text[];not null;default:'{}'"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TastePreferenceModel) TableName() string {
	return "taste_preferences"
}
