// Package follow tracks a user's follow relations and toggles them.
package follow

import (
	"foodiecircle/internal/domain/entity"

	"github.com/google/uuid"
)

// Snapshot is a caller-refreshed view of one subscriber's follow relations.
// It never syncs in the background.
type Snapshot struct {
	SubscriberID  uuid.UUID
	Subscriptions []*entity.Subscription
}

// Find returns the first subscription matching target, or nil.
func (s Snapshot) Find(target entity.FollowTarget) *entity.Subscription {
	for _, sub := range s.Subscriptions {
		if sub.Target.Matches(target) {
			return sub
		}
	}

	return nil
}

// IsFollowing reports whether any loaded subscription matches target.
func (s Snapshot) IsFollowing(target entity.FollowTarget) bool {
	return s.Find(target) != nil
}

// IsFollowingRestaurant is IsFollowing for a restaurant name.
func (s Snapshot) IsFollowingRestaurant(name string) bool {
	return s.IsFollowing(entity.RestaurantTarget(name))
}

func (s Snapshot) without(id uuid.UUID) Snapshot {
	out := Snapshot{SubscriberID: s.SubscriberID, Subscriptions: make([]*entity.Subscription, 0, len(s.Subscriptions))}
	removed := false
	for _, sub := range s.Subscriptions {
		if !removed && sub.ID == id {
			removed = true

			continue
		}
		out.Subscriptions = append(out.Subscriptions, sub)
	}

	return out
}

func (s Snapshot) with(sub *entity.Subscription) Snapshot {
	out := Snapshot{SubscriberID: s.SubscriberID, Subscriptions: make([]*entity.Subscription, 0, len(s.Subscriptions)+1)}
	out.Subscriptions = append(out.Subscriptions, s.Subscriptions...)
	out.Subscriptions = append(out.Subscriptions, sub)

	return out
}
