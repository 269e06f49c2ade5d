package usecase

import (
	"context"

	"foodiecircle/internal/domain/entity"
)

// PreferenceUsecase reads and replaces the caller's taste preferences.
type PreferenceUsecase interface {
	GetPreferences(ctx context.Context) (*entity.TastePreference, error)

	// UpdateFavoriteCuisines replaces the caller's cuisines after trimming and de-duplication.
	UpdateFavoriteCuisines(ctx context.Context, cuisines []string) (*entity.TastePreference, error)
}
