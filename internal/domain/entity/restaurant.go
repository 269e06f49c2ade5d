package entity

// RestaurantAggregate is derived from dishes on every query and never persisted.
type RestaurantAggregate struct {
	Name                  string    `json:"name"`
	AtmosphereMean        *float64  `json:"atmosphere_mean,omitempty"`   // nil when no contributing dish has a rating
	DominantOccasion      *Occasion `json:"dominant_occasion,omitempty"` // nil when no contributing dish has an occasion
	ContributingDishCount int       `json:"contributing_dish_count"`
}

// RestaurantResult pairs an aggregate with the caller's follow state.
type RestaurantResult struct {
	RestaurantAggregate
	IsFollowed bool `json:"is_followed"`
}
