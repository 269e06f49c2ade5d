package repository

import (
	"context"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository is the record store capability over the subscriptions collection.
// The store does not enforce uniqueness of (subscriber, target).
type SubscriptionRepository interface {
	// ScanSubscriptions returns subscriptions matching pred in insertion order.
	ScanSubscriptions(ctx context.Context, pred Predicate, limit int) ([]*entity.Subscription, error)

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// CreateSubscription persists a new follow relation.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// DeleteSubscription removes a subscription by its ID (hard delete).
	DeleteSubscription(ctx context.Context, id uuid.UUID) error
}
