package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TastePreference holds a user's cuisine affinities. It is the join source for the cuisine facet.
type TastePreference struct {
	UserID           uuid.UUID `json:"user_id"`
	FavoriteCuisines []string  `json:"favorite_cuisine"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NormalizeCuisines trims tags, drops empties and removes duplicates while keeping order.
func NormalizeCuisines(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
