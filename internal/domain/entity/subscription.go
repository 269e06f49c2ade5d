package entity

import (
	"strings"
	"time"

	"foodiecircle/internal/errors"

	"github.com/google/uuid"
)

// TargetKind tells which side of a FollowTarget is set.
type TargetKind string

const (
	TargetUser       TargetKind = "user"
	TargetRestaurant TargetKind = "restaurant"
)

// ErrInvalidTarget is returned when a follow target does not name exactly one user or restaurant.
var ErrInvalidTarget = errors.New("follow target must be exactly one of user or restaurant")

// FollowTarget is exactly one of a followed user or a followed restaurant name.
type FollowTarget struct {
	Kind           TargetKind `json:"kind"`
	UserID         uuid.UUID  `json:"user_id,omitempty"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
}

// UserTarget builds a target following another user.
func UserTarget(userID uuid.UUID) FollowTarget {
	return FollowTarget{Kind: TargetUser, UserID: userID}
}

// RestaurantTarget builds a target following a restaurant by name.
func RestaurantTarget(name string) FollowTarget {
	return FollowTarget{Kind: TargetRestaurant, RestaurantName: strings.TrimSpace(name)}
}

// NewFollowTarget builds a target from optional inputs, rejecting both or neither.
func NewFollowTarget(userID *uuid.UUID, restaurantName *string) (FollowTarget, error) {
	hasUser := userID != nil && *userID != uuid.Nil
	hasRestaurant := restaurantName != nil && strings.TrimSpace(*restaurantName) != ""

	switch {
	case hasUser && !hasRestaurant:
		return UserTarget(*userID), nil
	case hasRestaurant && !hasUser:
		return RestaurantTarget(*restaurantName), nil
	default:
		return FollowTarget{}, ErrInvalidTarget
	}
}

// Validate checks the exactly-one invariant.
func (t FollowTarget) Validate() error {
	switch t.Kind {
	case TargetUser:
		if t.UserID == uuid.Nil || t.RestaurantName != "" {
			return ErrInvalidTarget
		}
	case TargetRestaurant:
		if t.RestaurantName == "" || t.UserID != uuid.Nil {
			return ErrInvalidTarget
		}
	default:
		return ErrInvalidTarget
	}

	return nil
}

// Matches compares targets of the same kind. Restaurant names compare exactly.
func (t FollowTarget) Matches(other FollowTarget) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == TargetUser {
		return t.UserID == other.UserID
	}

	return t.RestaurantName == other.RestaurantName
}

// String renders the target for logs.
func (t FollowTarget) String() string {
	if t.Kind == TargetUser {
		return "user:" + t.UserID.String()
	}

	return "restaurant:" + t.RestaurantName
}

// Subscription is a user's follow relation. Created by follow, destroyed by unfollow, never mutated.
type Subscription struct {
	ID           uuid.UUID    `json:"id"`            // The Global Unique Identifier (GUID) for the subscription.
	SubscriberID uuid.UUID    `json:"user_id"`       // The ID of the following user.
	Target       FollowTarget `json:"target"`        // What is followed.
	CreatedAt    time.Time    `json:"subscribed_at"` // Timestamp of when the subscription was created.
}
