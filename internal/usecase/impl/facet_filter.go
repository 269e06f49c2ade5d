package impl

import (
	"context"
	"strings"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type facetFilter struct {
	dishRepo       repository.DishRepository
	preferenceRepo repository.TastePreferenceRepository
}

// FacetFilterParams holds dependencies for FacetFilter, injected by Fx.
type FacetFilterParams struct {
	fx.In

	DishRepo       repository.DishRepository
	PreferenceRepo repository.TastePreferenceRepository
}

// NewFacetFilter creates a new facet filter instance
func NewFacetFilter(params FacetFilterParams) usecase.FacetFilter {
	return &facetFilter{
		dishRepo:       params.DishRepo,
		preferenceRepo: params.PreferenceRepo,
	}
}

// FilterDishes runs at most two scans: taste preferences for the cuisine facet,
// then dishes restricted to the owners found.
func (f *facetFilter) FilterDishes(ctx context.Context, facets usecase.Facets, limit int) ([]*entity.Dish, error) {
	pred := repository.Where(
		repository.NotNull(repository.FieldRestaurant),
		repository.Ne(repository.FieldRestaurant, ""),
	)

	if text := strings.TrimSpace(facets.Text); text != "" {
		pred = pred.And(repository.ILikeSubstring(repository.FieldRestaurant, text))
	}
	if place := strings.TrimSpace(facets.Place); place != "" {
		pred = pred.And(repository.Eq(repository.FieldPlace, place))
	}
	if facets.Occasion != nil {
		if !facets.Occasion.IsValid() {
			return nil, domainerrors.ErrInvalidOccasion.WithDetails(facets.Occasion.String())
		}
		pred = pred.And(repository.Eq(repository.FieldOccasion, facets.Occasion.String()))
	}

	if cuisine := strings.TrimSpace(facets.Cuisine); cuisine != "" {
		owners, err := f.cuisineOwners(ctx, cuisine)
		if err != nil {
			return nil, err
		}
		if len(owners) == 0 {
			return []*entity.Dish{}, nil
		}
		pred = pred.And(repository.In(repository.FieldUserID, owners))
	}

	dishes, err := f.dishRepo.ScanDishes(ctx, pred, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan dishes")
	}

	return dishes, nil
}

func (f *facetFilter) cuisineOwners(ctx context.Context, cuisine string) ([]uuid.UUID, error) {
	prefs, err := f.preferenceRepo.ScanTastePreferences(ctx,
		repository.Where(repository.Contains(repository.FieldFavoriteCuisine, cuisine)), 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan taste preferences")
	}

	owners := make([]uuid.UUID, 0, len(prefs))
	for _, pref := range prefs {
		owners = append(owners, pref.UserID)
	}

	return owners, nil
}
