package repository

import (
	"context"

	"foodiecircle/internal/domain/entity"
)

// TastePreferenceRepository is the record store capability over the taste_preferences collection.
type TastePreferenceRepository interface {
	// ScanTastePreferences returns preferences matching pred.
	ScanTastePreferences(ctx context.Context, pred Predicate, limit int) ([]*entity.TastePreference, error)

	// UpsertTastePreference replaces the favourite cuisines of pref.UserID.
	UpsertTastePreference(ctx context.Context, pref *entity.TastePreference) error

	// DistinctCuisines returns every cuisine tag in use, sorted.
	DistinctCuisines(ctx context.Context) ([]string, error)
}
