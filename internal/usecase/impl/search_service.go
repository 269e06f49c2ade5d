package impl

import (
	"context"
	"log/slog"
	"strings"

	"foodiecircle/config"
	"foodiecircle/internal/domain/aggregate"
	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/follow"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/metrics"
	"foodiecircle/internal/usecase"

	"go.uber.org/fx"
)

type searchService struct {
	filter           usecase.FacetFilter
	dishRepo         repository.DishRepository
	profileRepo      repository.ProfileRepository
	preferenceRepo   repository.TastePreferenceRepository
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
	resultLimit      int
	scanWindow       int
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Filter           usecase.FacetFilter
	DishRepo         repository.DishRepository
	ProfileRepo      repository.ProfileRepository
	PreferenceRepo   repository.TastePreferenceRepository
	SubscriptionRepo repository.SubscriptionRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	resultLimit, scanWindow := 20, 1000
	if params.Config.Search != nil {
		if params.Config.Search.ResultLimit > 0 {
			resultLimit = params.Config.Search.ResultLimit
		}
		if params.Config.Search.ScanWindow > 0 {
			scanWindow = params.Config.Search.ScanWindow
		}
	}

	return &searchService{
		filter:           params.Filter,
		dishRepo:         params.DishRepo,
		profileRepo:      params.ProfileRepo,
		preferenceRepo:   params.PreferenceRepo,
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
		resultLimit:      resultLimit,
		scanWindow:       max(scanWindow, resultLimit),
	}
}

// Search dispatches on category. Restaurant results are aggregated over at most
// scanWindow dishes and then capped at resultLimit distinct restaurants.
func (s *searchService) Search(ctx context.Context, state usecase.SearchState) (*usecase.SearchResult, error) {
	category, ok := usecase.ParseCategory(state.Category)
	if !ok {
		metrics.SearchRequestsTotal.WithLabelValues("invalid", "error").Inc()

		return nil, domainerrors.ErrInvalidCategory.WithDetails(state.Category)
	}

	result := &usecase.SearchResult{State: state, Category: category}

	var err error
	switch category {
	case usecase.CategoryRestaurants:
		err = s.searchRestaurants(ctx, state, result)
	default:
		err = s.searchPeople(ctx, state, result)
	}
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(string(category), "error").Inc()

		return nil, err
	}

	metrics.SearchRequestsTotal.WithLabelValues(string(category), "ok").Inc()
	metrics.SearchResults.WithLabelValues(string(category)).Observe(float64(len(result.People) + len(result.Restaurants)))

	return result, nil
}

// searchPeople lists nobody until a username fragment is entered.
func (s *searchService) searchPeople(ctx context.Context, state usecase.SearchState, result *usecase.SearchResult) error {
	text := strings.TrimSpace(state.Text)
	if text == "" {
		return nil
	}

	pred := repository.Where(repository.ILikeSubstring(repository.FieldUsername, text))
	profiles, err := s.profileRepo.ScanProfiles(ctx, pred, s.resultLimit)
	if err != nil {
		return errors.Wrap(err, "failed to search people")
	}

	result.People = profiles

	return nil
}

func (s *searchService) searchRestaurants(ctx context.Context, state usecase.SearchState, result *usecase.SearchResult) error {
	facets := usecase.Facets{
		Text:    state.Text,
		Place:   state.City,
		Cuisine: state.Cuisine,
	}
	if raw := strings.TrimSpace(state.Occasion); raw != "" {
		occasion, err := entity.ParseOccasion(raw)
		if err != nil {
			return domainerrors.ErrInvalidOccasion.WithDetails(raw)
		}
		facets.Occasion = &occasion
	}

	dishes, err := s.filter.FilterDishes(ctx, facets, s.scanWindow)
	if err != nil {
		return errors.Wrap(err, "failed to filter dishes")
	}
	metrics.SearchDishesScanned.Observe(float64(len(dishes)))

	aggregates := aggregate.Restaurants(dishes)
	if len(aggregates) > s.resultLimit {
		aggregates = aggregates[:s.resultLimit]
	}

	snapshot, degraded := s.followSnapshot(ctx)

	result.Restaurants = make([]entity.RestaurantResult, 0, len(aggregates))
	for _, agg := range aggregates {
		result.Restaurants = append(result.Restaurants, entity.RestaurantResult{
			RestaurantAggregate: agg,
			IsFollowed:          snapshot.IsFollowingRestaurant(agg.Name),
		})
	}
	result.FollowStateDegraded = degraded

	if len(dishes) == s.scanWindow {
		s.logger.DebugContext(ctx, "Restaurant search hit scan window",
			slog.Int("scan_window", s.scanWindow),
		)
	}

	return nil
}

// followSnapshot loads the caller's subscriptions. Anonymous callers get an
// empty snapshot. A failed load degrades follow state instead of failing the search.
func (s *searchService) followSnapshot(ctx context.Context) (follow.Snapshot, bool) {
	if _, ok := identity.FromContext(ctx); !ok {
		return follow.Snapshot{}, false
	}

	tracker := follow.NewTracker(s.subscriptionRepo, s.logger)
	if err := tracker.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "Failed to load follow state, returning results unfollowed",
			slog.Any("error", err),
		)
		metrics.FollowStateDegradedTotal.Inc()

		return follow.Snapshot{}, true
	}

	return tracker.Snapshot(), false
}

// FilterOptions reads distinct places and cuisines in two scans.
func (s *searchService) FilterOptions(ctx context.Context) (*usecase.FilterOptions, error) {
	cities, err := s.dishRepo.DistinctPlaces(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cuisines, err := s.preferenceRepo.DistinctCuisines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cuisines")
	}

	return &usecase.FilterOptions{
		Cities:    cities,
		Cuisines:  cuisines,
		Occasions: entity.Occasions(),
	}, nil
}

// RestaurantDetail returns every dish logged at name and their aggregate.
func (s *searchService) RestaurantDetail(ctx context.Context, name string) (*usecase.RestaurantDetail, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("restaurant name is required")
	}

	dishes, err := s.dishRepo.ScanDishes(ctx,
		repository.Where(repository.Eq(repository.FieldRestaurant, name)), s.scanWindow)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant dishes")
	}

	snapshot, degraded := s.followSnapshot(ctx)
	detail := &usecase.RestaurantDetail{
		Restaurant: entity.RestaurantResult{
			RestaurantAggregate: entity.RestaurantAggregate{Name: name},
			IsFollowed:          snapshot.IsFollowingRestaurant(name),
		},
		Dishes:              dishes,
		FollowStateDegraded: degraded,
	}

	if aggregates := aggregate.Restaurants(dishes); len(aggregates) > 0 {
		detail.Restaurant.RestaurantAggregate = aggregates[0]
	}

	s.logger.DebugContext(ctx, "Restaurant detail loaded",
		slog.String("restaurant", name),
		slog.Int("dishes", len(dishes)),
	)

	return detail, nil
}
