package impl

import (
	"context"
	"testing"

	"foodiecircle/internal/domain/aggregate"
	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/infra/persistence/memory"
	mockRepo "foodiecircle/internal/mocks/repository"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemoryFacetFilter(store *memory.Store) usecase.FacetFilter {
	return NewFacetFilter(FacetFilterParams{
		DishRepo:       store.Dishes(),
		PreferenceRepo: store.TastePreferences(),
	})
}

func TestFacetFilter_TextMatchesRestaurantSubstring(t *testing.T) {
	store := memory.NewStore()
	owner := uuid.New()
	seedDishes(t, store,
		dishSeed{owner: owner, restaurant: ptr("Sushi Master")},
		dishSeed{owner: owner, restaurant: ptr("Burger Co")},
		dishSeed{owner: owner, restaurant: ptr("Little Sushiya")},
		dishSeed{owner: owner, restaurant: nil},
		dishSeed{owner: owner, restaurant: ptr("SUSHI bar")},
	)

	dishes, err := newMemoryFacetFilter(store).FilterDishes(context.Background(), usecase.Facets{Text: "sushi"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sushi Master", "Little Sushiya", "SUSHI bar"}, restaurantNames(dishes))
}

func TestFacetFilter_TextWildcardsAreLiteral(t *testing.T) {
	store := memory.NewStore()
	owner := uuid.New()
	seedDishes(t, store,
		dishSeed{owner: owner, restaurant: ptr("100% Vegan")},
		dishSeed{owner: owner, restaurant: ptr("Vegan Corner")},
	)

	dishes, err := newMemoryFacetFilter(store).FilterDishes(context.Background(), usecase.Facets{Text: "%"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Vegan"}, restaurantNames(dishes))
}

func TestFacetFilter_EmptyFacetsReturnEveryRestaurantDish(t *testing.T) {
	store := memory.NewStore()
	owner := uuid.New()
	seedDishes(t, store,
		dishSeed{owner: owner, restaurant: ptr("A")},
		dishSeed{owner: owner},
		dishSeed{owner: owner, restaurant: ptr("B")},
	)

	dishes, err := newMemoryFacetFilter(store).FilterDishes(context.Background(), usecase.Facets{}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, restaurantNames(dishes))
}

func TestFacetFilter_BlankRestaurantIsExcluded(t *testing.T) {
	store := memory.NewStore()
	owner := uuid.New()
	seedDishes(t, store,
		dishSeed{owner: owner, restaurant: ptr("")},
		dishSeed{owner: owner, restaurant: ptr("A")},
	)

	dishes, err := newMemoryFacetFilter(store).FilterDishes(context.Background(), usecase.Facets{}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, restaurantNames(dishes))
	assert.Len(t, aggregate.Restaurants(dishes), len(dishes))
}

func TestFacetFilter_PlaceAndOccasion(t *testing.T) {
	store := memory.NewStore()
	owner := uuid.New()
	date := entity.OccasionDate
	family := entity.OccasionFamily
	seedDishes(t, store,
		dishSeed{owner: owner, restaurant: ptr("A"), place: ptr("Taipei"), occasion: &date},
		dishSeed{owner: owner, restaurant: ptr("B"), place: ptr("Taipei"), occasion: &family},
		dishSeed{owner: owner, restaurant: ptr("C"), place: ptr("Tainan"), occasion: &date},
	)

	filter := newMemoryFacetFilter(store)

	dishes, err := filter.FilterDishes(context.Background(), usecase.Facets{Place: "Taipei"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, restaurantNames(dishes))

	dishes, err = filter.FilterDishes(context.Background(), usecase.Facets{Place: "Taipei", Occasion: &date}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, restaurantNames(dishes))
}

func TestFacetFilter_InvalidOccasion(t *testing.T) {
	filter := NewFacetFilter(FacetFilterParams{
		DishRepo:       mockRepo.NewMockDishRepository(t),
		PreferenceRepo: mockRepo.NewMockTastePreferenceRepository(t),
	})

	bogus := entity.Occasion("brunch")
	_, err := filter.FilterDishes(context.Background(), usecase.Facets{Occasion: &bogus}, 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidOccasion)
}

func TestFacetFilter_CuisineRestrictsToOwners(t *testing.T) {
	store := memory.NewStore()
	sushiLover, burgerLover := uuid.New(), uuid.New()
	seedCuisines(t, store, sushiLover, "japanese", "thai")
	seedCuisines(t, store, burgerLover, "american")
	seedDishes(t, store,
		dishSeed{owner: sushiLover, restaurant: ptr("Sushi Master")},
		dishSeed{owner: burgerLover, restaurant: ptr("Burger Co")},
	)

	filter := newMemoryFacetFilter(store)

	dishes, err := filter.FilterDishes(context.Background(), usecase.Facets{Cuisine: "japanese"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sushi Master"}, restaurantNames(dishes))

	dishes, err = filter.FilterDishes(context.Background(), usecase.Facets{}, 0)
	require.NoError(t, err)
	assert.Len(t, dishes, 2, "unset cuisine yields every dish")
}

func TestFacetFilter_CuisineWithNoMatchSkipsDishScan(t *testing.T) {
	dishRepo := mockRepo.NewMockDishRepository(t)
	prefRepo := mockRepo.NewMockTastePreferenceRepository(t)
	filter := NewFacetFilter(FacetFilterParams{DishRepo: dishRepo, PreferenceRepo: prefRepo})

	ctx := context.Background()
	prefRepo.EXPECT().
		ScanTastePreferences(ctx, repository.Where(repository.Contains(repository.FieldFavoriteCuisine, "ethiopian")), 0).
		Return([]*entity.TastePreference{}, nil)

	dishes, err := filter.FilterDishes(ctx, usecase.Facets{Cuisine: "ethiopian"}, 20)
	require.NoError(t, err)
	assert.NotNil(t, dishes)
	assert.Empty(t, dishes)
	dishRepo.AssertNotCalled(t, "ScanDishes", mock.Anything, mock.Anything, mock.Anything)
}

func TestFacetFilter_BuildsConjunctivePredicate(t *testing.T) {
	dishRepo := mockRepo.NewMockDishRepository(t)
	prefRepo := mockRepo.NewMockTastePreferenceRepository(t)
	filter := NewFacetFilter(FacetFilterParams{DishRepo: dishRepo, PreferenceRepo: prefRepo})

	ctx := context.Background()
	owner := uuid.New()
	occasion := entity.OccasionAfterWork

	prefRepo.EXPECT().
		ScanTastePreferences(ctx, mock.AnythingOfType("repository.Predicate"), 0).
		Return([]*entity.TastePreference{{UserID: owner}}, nil)

	want := repository.Where(
		repository.NotNull(repository.FieldRestaurant),
		repository.Ne(repository.FieldRestaurant, ""),
		repository.ILikeSubstring(repository.FieldRestaurant, "bar"),
		repository.Eq(repository.FieldPlace, "Taipei"),
		repository.Eq(repository.FieldOccasion, "after-work"),
		repository.In(repository.FieldUserID, []uuid.UUID{owner}),
	)
	dishRepo.EXPECT().ScanDishes(ctx, want, 50).Return([]*entity.Dish{}, nil)

	_, err := filter.FilterDishes(ctx, usecase.Facets{
		Text:     " bar ",
		Place:    "Taipei",
		Cuisine:  "japanese",
		Occasion: &occasion,
	}, 50)
	require.NoError(t, err)
}

func TestFacetFilter_StoreErrorsPropagate(t *testing.T) {
	store := memory.NewStore()
	store.FailCollection(memory.CollectionTastePreferences, errors.New("connection refused"))

	_, err := newMemoryFacetFilter(store).FilterDishes(context.Background(), usecase.Facets{Cuisine: "thai"}, 0)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}
