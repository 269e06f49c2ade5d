package impl

import (
	"context"
	"testing"

	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_UpdateAndGet(t *testing.T) {
	store := memory.NewStore()
	svc := NewPreferenceService(store.TastePreferences())

	userID := uuid.New()
	ctx := identity.WithUserID(context.Background(), userID)

	empty, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.FavoriteCuisines)

	pref, err := svc.UpdateFavoriteCuisines(ctx, []string{" thai ", "", "japanese", "thai"})
	require.NoError(t, err)
	assert.Equal(t, []string{"thai", "japanese"}, pref.FavoriteCuisines)

	pref, err = svc.UpdateFavoriteCuisines(ctx, []string{"korean"})
	require.NoError(t, err)

	got, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, []string{"korean"}, got.FavoriteCuisines)
	assert.Equal(t, pref.FavoriteCuisines, got.FavoriteCuisines)
}

func TestPreferenceService_Errors(t *testing.T) {
	svc := NewPreferenceService(memory.NewStore().TastePreferences())

	_, err := svc.UpdateFavoriteCuisines(context.Background(), []string{"thai"})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	tooMany := make([]string, maxFavoriteCuisines+1)
	for i := range tooMany {
		tooMany[i] = uuid.NewString()
	}
	_, err = svc.UpdateFavoriteCuisines(identity.WithUserID(context.Background(), uuid.New()), tooMany)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
