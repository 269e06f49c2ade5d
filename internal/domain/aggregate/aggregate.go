// Package aggregate folds dish records into restaurant-level statistics.
package aggregate

import (
	"foodiecircle/internal/domain/entity"
)

type accumulator struct {
	name        string
	dishCount   int
	ratingSum   int
	ratingCount int
	// occasion counts in first-seen order, so ties resolve to the earliest occasion
	occasions []occasionCount
}

type occasionCount struct {
	occasion entity.Occasion
	count    int
}

func (a *accumulator) add(d *entity.Dish) {
	a.dishCount++
	if d.AtmosphereRating != nil {
		a.ratingSum += *d.AtmosphereRating
		a.ratingCount++
	}
	if d.Occasion == nil {
		return
	}
	for i := range a.occasions {
		if a.occasions[i].occasion == *d.Occasion {
			a.occasions[i].count++

			return
		}
	}
	a.occasions = append(a.occasions, occasionCount{occasion: *d.Occasion, count: 1})
}

func (a *accumulator) result() entity.RestaurantAggregate {
	agg := entity.RestaurantAggregate{
		Name:                  a.name,
		ContributingDishCount: a.dishCount,
	}
	if a.ratingCount > 0 {
		mean := float64(a.ratingSum) / float64(a.ratingCount)
		agg.AtmosphereMean = &mean
	}

	best := -1
	for i, oc := range a.occasions {
		if best < 0 || oc.count > a.occasions[best].count {
			best = i
		}
	}
	if best >= 0 {
		dominant := a.occasions[best].occasion
		agg.DominantOccasion = &dominant
	}

	return agg
}

// Restaurants returns one aggregate per distinct restaurant name in dishes,
// in the order each name first appears. Dishes without a restaurant are skipped.
// The input is read once and never modified.
func Restaurants(dishes []*entity.Dish) []entity.RestaurantAggregate {
	index := make(map[string]int)
	accs := make([]*accumulator, 0)

	for _, d := range dishes {
		if !d.HasRestaurant() {
			continue
		}
		name := *d.RestaurantName
		i, ok := index[name]
		if !ok {
			i = len(accs)
			index[name] = i
			accs = append(accs, &accumulator{name: name})
		}
		accs[i].add(d)
	}

	out := make([]entity.RestaurantAggregate, len(accs))
	for i, acc := range accs {
		out[i] = acc.result()
	}

	return out
}
