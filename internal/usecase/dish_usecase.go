package usecase

import (
	"context"

	"foodiecircle/internal/domain/entity"
)

// DishInput is a dish as submitted by its author.
type DishInput struct {
	Name             string  `json:"name" validate:"required,max=200"`
	RestaurantName   *string `json:"restaurant,omitempty" validate:"omitempty,max=200"`
	Place            *string `json:"place,omitempty" validate:"omitempty,max=200"`
	Occasion         string  `json:"occasion,omitempty"`
	AtmosphereRating *int    `json:"atmosphere_rating,omitempty" validate:"omitempty,min=1,max=5"`
	DishRating       *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes            string  `json:"notes,omitempty" validate:"max=2000"`
	ImageURL         string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

// DishUsecase records dishes for the caller.
type DishUsecase interface {
	// LogDish stores a dish owned by the caller and announces it to followers.
	LogDish(ctx context.Context, input *DishInput) (*entity.Dish, error)
}
