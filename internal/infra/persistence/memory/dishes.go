package memory

import (
	"context"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"

	"github.com/google/uuid"
)

type dishRepository struct{ s *Store }

var dishFields = fields(
	repository.FieldID, repository.FieldUserID, repository.FieldRestaurant,
	repository.FieldPlace, repository.FieldOccasion,
)

func dishField(d *entity.Dish, field string) (any, bool, bool) {
	switch field {
	case repository.FieldID:
		return d.ID, true, true
	case repository.FieldUserID:
		return d.OwnerID, true, true
	case repository.FieldRestaurant:
		if d.RestaurantName == nil {
			return nil, false, true
		}

		return *d.RestaurantName, true, true
	case repository.FieldPlace:
		if d.Place == nil {
			return nil, false, true
		}

		return *d.Place, true, true
	case repository.FieldOccasion:
		if d.Occasion == nil {
			return nil, false, true
		}

		return d.Occasion.String(), true, true
	default:
		return nil, false, false
	}
}

func cloneDish(d *entity.Dish) *entity.Dish {
	c := *d

	return &c
}

func (r dishRepository) ScanDishes(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.Dish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "scan", CollectionDishes); err != nil {
		return nil, err
	}
	out, err := scan(r.s.dishes, pred, limit, dishFields, dishField, cloneDish)
	if err != nil {
		return nil, domainerrors.NewStoreError("scan", CollectionDishes, err)
	}

	return out, nil
}

func (r dishRepository) CreateDish(ctx context.Context, dish *entity.Dish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "insert", CollectionDishes); err != nil {
		return err
	}
	dish.ID = ensureID(dish.ID)
	dish.CreatedAt = r.s.stamp(dish.CreatedAt)
	r.s.dishes = append(r.s.dishes, cloneDish(dish))

	return nil
}

func (r dishRepository) DeleteDish(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "delete", CollectionDishes); err != nil {
		return err
	}
	r.s.dishes = deleteFirst(r.s.dishes, func(d *entity.Dish) bool { return d.ID == id })

	return nil
}

func (r dishRepository) DistinctPlaces(ctx context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "distinct", CollectionDishes); err != nil {
		return nil, err
	}
	places := make([]string, 0)
	for _, d := range r.s.dishes {
		if d.Place != nil && *d.Place != "" {
			places = append(places, *d.Place)
		}
	}

	return sortedUnique(places), nil
}

// deleteFirst removes the first record matching fn.
func deleteFirst[T any](records []T, fn func(T) bool) []T {
	for i, r := range records {
		if fn(r) {
			return append(records[:i:i], records[i+1:]...)
		}
	}

	return records
}
