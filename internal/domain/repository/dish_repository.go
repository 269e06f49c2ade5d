package repository

import (
	"context"

	"foodiecircle/internal/domain/entity"

	"github.com/google/uuid"
)

// DishRepository is the record store capability over the dishes collection.
type DishRepository interface {
	// ScanDishes returns dishes matching pred in insertion order. A limit <= 0 means unbounded.
	ScanDishes(ctx context.Context, pred Predicate, limit int) ([]*entity.Dish, error)

	// CreateDish persists a new dish.
	CreateDish(ctx context.Context, dish *entity.Dish) error

	// DeleteDish removes a dish by its ID.
	DeleteDish(ctx context.Context, id uuid.UUID) error

	// DistinctPlaces returns every non-empty place tag, sorted.
	DistinctPlaces(ctx context.Context) ([]string, error)
}
