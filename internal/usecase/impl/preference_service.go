package impl

import (
	"context"
	"time"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/usecase"
)

const maxFavoriteCuisines = 20

type preferenceService struct {
	preferenceRepo repository.TastePreferenceRepository
	now            func() time.Time
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(preferenceRepo repository.TastePreferenceRepository) usecase.PreferenceUsecase {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		now:            time.Now,
	}
}

// GetPreferences returns the caller's preferences, empty when none were saved.
func (s *preferenceService) GetPreferences(ctx context.Context) (*entity.TastePreference, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	prefs, err := s.preferenceRepo.ScanTastePreferences(ctx,
		repository.Where(repository.Eq(repository.FieldUserID, userID)), 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load taste preferences")
	}
	if len(prefs) == 0 {
		return &entity.TastePreference{UserID: userID, FavoriteCuisines: []string{}}, nil
	}

	return prefs[0], nil
}

// UpdateFavoriteCuisines replaces the caller's cuisine tags
func (s *preferenceService) UpdateFavoriteCuisines(ctx context.Context, cuisines []string) (*entity.TastePreference, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	normalized := entity.NormalizeCuisines(cuisines)
	if len(normalized) > maxFavoriteCuisines {
		return nil, domainerrors.ErrValidationFailed.WithDetails("too many favourite cuisines")
	}

	pref := &entity.TastePreference{
		UserID:           userID,
		FavoriteCuisines: normalized,
		UpdatedAt:        s.now(),
	}
	if err := s.preferenceRepo.UpsertTastePreference(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to save taste preferences")
	}

	return pref, nil
}
