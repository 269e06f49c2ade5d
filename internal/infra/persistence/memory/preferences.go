package memory

import (
	"context"
	"slices"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"
)

type tastePreferenceRepository struct{ s *Store }

var preferenceFields = fields(
	repository.FieldUserID, repository.FieldFavoriteCuisine,
)

func preferenceField(p *entity.TastePreference, field string) (any, bool, bool) {
	switch field {
	case repository.FieldUserID:
		return p.UserID, true, true
	case repository.FieldFavoriteCuisine:
		return p.FavoriteCuisines, true, true
	default:
		return nil, false, false
	}
}

func clonePreference(p *entity.TastePreference) *entity.TastePreference {
	c := *p
	c.FavoriteCuisines = slices.Clone(p.FavoriteCuisines)

	return &c
}

func (r tastePreferenceRepository) ScanTastePreferences(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.TastePreference, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "scan", CollectionTastePreferences); err != nil {
		return nil, err
	}
	out, err := scan(r.s.preferences, pred, limit, preferenceFields, preferenceField, clonePreference)
	if err != nil {
		return nil, domainerrors.NewStoreError("scan", CollectionTastePreferences, err)
	}

	return out, nil
}

func (r tastePreferenceRepository) UpsertTastePreference(ctx context.Context, pref *entity.TastePreference) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "upsert", CollectionTastePreferences); err != nil {
		return err
	}
	pref.UpdatedAt = r.s.now()
	// updated_at orders the collection, so an upsert moves the row to the end
	r.s.preferences = deleteFirst(r.s.preferences, func(p *entity.TastePreference) bool { return p.UserID == pref.UserID })
	r.s.preferences = append(r.s.preferences, clonePreference(pref))

	return nil
}

func (r tastePreferenceRepository) DistinctCuisines(ctx context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "distinct", CollectionTastePreferences); err != nil {
		return nil, err
	}
	tags := make([]string, 0)
	for _, p := range r.s.preferences {
		for _, tag := range p.FavoriteCuisines {
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return sortedUnique(tags), nil
}
