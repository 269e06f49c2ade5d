package usecase

import (
	"context"
	"strings"

	"foodiecircle/internal/domain/entity"
)

// Category selects what a search returns.
type Category string

const (
	// CategoryPeople searches profiles by username. It is the default.
	CategoryPeople Category = "people"
	// CategoryRestaurants searches restaurants aggregated from logged dishes.
	CategoryRestaurants Category = "restaurants"
)

// ParseCategory maps raw input onto a Category. Empty input means people.
func ParseCategory(raw string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CategoryPeople:
		return CategoryPeople, true
	case CategoryRestaurants:
		return CategoryRestaurants, true
	default:
		return "", false
	}
}

// Facets restricts a dish scan. Empty facets apply no restriction.
type Facets struct {
	Text     string
	Place    string
	Cuisine  string
	Occasion *entity.Occasion
}

// SearchState is the raw query a search was computed for.
type SearchState struct {
	Text     string `json:"q" query:"q"`
	Category string `json:"category" query:"category"`
	City     string `json:"city" query:"city"`
	Cuisine  string `json:"cuisine" query:"cuisine"`
	Occasion string `json:"occasion" query:"occasion"`
}

// SearchResult is a materialized search answer. State echoes the query so
// callers can drop responses to superseded queries.
type SearchResult struct {
	State               SearchState               `json:"state"`
	Category            Category                  `json:"category"`
	People              []*entity.Profile         `json:"people,omitempty"`
	Restaurants         []entity.RestaurantResult `json:"restaurants,omitempty"`
	FollowStateDegraded bool                      `json:"follow_state_degraded"`
}

// FilterOptions lists the values offered by search filters.
type FilterOptions struct {
	Cities    []string          `json:"cities"`
	Cuisines  []string          `json:"cuisines"`
	Occasions []entity.Occasion `json:"occasions"`
}

// RestaurantDetail is one restaurant with the dishes that make up its aggregate.
type RestaurantDetail struct {
	Restaurant          entity.RestaurantResult `json:"restaurant"`
	Dishes              []*entity.Dish          `json:"dishes"`
	FollowStateDegraded bool                    `json:"follow_state_degraded"`
}

// FacetFilter translates facets into dish scans.
type FacetFilter interface {
	// FilterDishes returns dishes with a restaurant matching every non-empty
	// facet, in scan order. A cuisine no one prefers yields an empty slice.
	FilterDishes(ctx context.Context, facets Facets, limit int) ([]*entity.Dish, error)
}

// SearchUsecase answers discovery queries.
type SearchUsecase interface {
	// Search runs a people or restaurant search for state.
	Search(ctx context.Context, state SearchState) (*SearchResult, error)

	// FilterOptions returns distinct cities, cuisines and occasions.
	FilterOptions(ctx context.Context) (*FilterOptions, error)

	// RestaurantDetail aggregates every dish logged at name.
	RestaurantDetail(ctx context.Context, name string) (*RestaurantDetail, error)
}
