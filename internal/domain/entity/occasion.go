package entity

import (
	"strings"

	"foodiecircle/internal/errors"
)

// Occasion describes the social context of a meal. The set is closed.
type Occasion string

const (
	OccasionDate           Occasion = "date"
	OccasionAfterWork      Occasion = "after-work"
	OccasionBusinessDinner Occasion = "business-dinner"
	OccasionWithFriends    Occasion = "with-friends"
	OccasionFamily         Occasion = "family"
)

// ErrUnknownOccasion is returned by ParseOccasion for values outside the closed set.
var ErrUnknownOccasion = errors.New("unknown occasion")

// Occasions lists every valid occasion in display order.
func Occasions() []Occasion {
	return []Occasion{
		OccasionDate,
		OccasionAfterWork,
		OccasionBusinessDinner,
		OccasionWithFriends,
		OccasionFamily,
	}
}

// String returns the string representation of the Occasion.
func (o Occasion) String() string {
	return string(o)
}

// IsValid checks if the Occasion is a member of the closed set.
func (o Occasion) IsValid() bool {
	switch o {
	case OccasionDate, OccasionAfterWork, OccasionBusinessDinner, OccasionWithFriends, OccasionFamily:
		return true
	default:
		return false
	}
}

// ParseOccasion validates free text coming from a request or the store.
// Matching ignores case and surrounding whitespace.
func ParseOccasion(s string) (Occasion, error) {
	o := Occasion(strings.ToLower(strings.TrimSpace(s)))
	if !o.IsValid() {
		return "", errors.Wrapf(ErrUnknownOccasion, "%q", s)
	}

	return o, nil
}
