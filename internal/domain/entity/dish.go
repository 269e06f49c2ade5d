// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dish is one logged meal.
type Dish struct {
	ID               uuid.UUID `json:"id"`                          // The Global Unique Identifier (GUID) for the dish.
	OwnerID          uuid.UUID `json:"user_id"`                     // The user who logged the dish.
	Name             string    `json:"name"`                        // Dish name as typed by the user.
	RestaurantName   *string   `json:"restaurant,omitempty"`        // Grouping key for restaurant aggregation; nil excludes the dish.
	Place            *string   `json:"place,omitempty"`             // Free-form city or location tag.
	Occasion         *Occasion `json:"occasion,omitempty"`          // Social context of the meal.
	AtmosphereRating *int      `json:"atmosphere_rating,omitempty"` // 1 to 5.
	DishRating       *int      `json:"rating,omitempty"`            // 1 to 5.
	Notes            string    `json:"notes,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// HasRestaurant reports whether the dish takes part in restaurant aggregation.
func (d *Dish) HasRestaurant() bool {
	return d != nil && d.RestaurantName != nil && *d.RestaurantName != ""
}

// Ratings are bounded to this inclusive range.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether an optional rating is absent or within range.
func ValidRating(r *int) bool {
	return r == nil || (*r >= MinRating && *r <= MaxRating)
}
