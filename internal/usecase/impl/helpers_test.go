package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type dishSeed struct {
	owner      uuid.UUID
	restaurant *string
	place      *string
	occasion   *entity.Occasion
	atmosphere *int
}

func seedDishes(t *testing.T, store *memory.Store, seeds ...dishSeed) {
	t.Helper()

	for i, seed := range seeds {
		require.NoError(t, store.Dishes().CreateDish(context.Background(), &entity.Dish{
			OwnerID:          seed.owner,
			Name:             "dish " + string(rune('a'+i)),
			RestaurantName:   seed.restaurant,
			Place:            seed.place,
			Occasion:         seed.occasion,
			AtmosphereRating: seed.atmosphere,
		}))
	}
}

func seedCuisines(t *testing.T, store *memory.Store, userID uuid.UUID, cuisines ...string) {
	t.Helper()

	require.NoError(t, store.TastePreferences().UpsertTastePreference(context.Background(), &entity.TastePreference{
		UserID:           userID,
		FavoriteCuisines: cuisines,
	}))
}

func restaurantNames(dishes []*entity.Dish) []string {
	names := make([]string, 0, len(dishes))
	for _, d := range dishes {
		names = append(names, *d.RestaurantName)
	}

	return names
}
