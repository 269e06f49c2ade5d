package memory

import (
	"context"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"

	"github.com/google/uuid"
)

type subscriptionRepository struct{ s *Store }

var subscriptionFields = fields(
	repository.FieldID, repository.FieldUserID,
	repository.FieldSubscribedToUser, repository.FieldSubscribedToRestaurant,
)

func subscriptionField(sub *entity.Subscription, field string) (any, bool, bool) {
	switch field {
	case repository.FieldID:
		return sub.ID, true, true
	case repository.FieldUserID:
		return sub.SubscriberID, true, true
	case repository.FieldSubscribedToUser:
		if sub.Target.Kind != entity.TargetUser {
			return nil, false, true
		}

		return sub.Target.UserID, true, true
	case repository.FieldSubscribedToRestaurant:
		if sub.Target.Kind != entity.TargetRestaurant {
			return nil, false, true
		}

		return sub.Target.RestaurantName, true, true
	default:
		return nil, false, false
	}
}

func cloneSubscription(sub *entity.Subscription) *entity.Subscription {
	c := *sub

	return &c
}

func (r subscriptionRepository) ScanSubscriptions(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.Subscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "scan", CollectionSubscriptions); err != nil {
		return nil, err
	}
	out, err := scan(r.s.subscriptions, pred, limit, subscriptionFields, subscriptionField, cloneSubscription)
	if err != nil {
		return nil, domainerrors.NewStoreError("scan", CollectionSubscriptions, err)
	}

	return out, nil
}

func (r subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "find", CollectionSubscriptions); err != nil {
		return nil, err
	}
	for _, sub := range r.s.subscriptions {
		if sub.ID == id {
			return cloneSubscription(sub), nil
		}
	}

	return nil, repository.ErrSubscriptionNotFound
}

func (r subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "insert", CollectionSubscriptions); err != nil {
		return err
	}
	if err := subscription.Target.Validate(); err != nil {
		return domainerrors.NewStoreError("insert", CollectionSubscriptions, err)
	}
	subscription.ID = ensureID(subscription.ID)
	subscription.CreatedAt = r.s.stamp(subscription.CreatedAt)
	r.s.subscriptions = append(r.s.subscriptions, cloneSubscription(subscription))

	return nil
}

func (r subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "delete", CollectionSubscriptions); err != nil {
		return err
	}
	before := len(r.s.subscriptions)
	r.s.subscriptions = deleteFirst(r.s.subscriptions, func(sub *entity.Subscription) bool { return sub.ID == id })
	if len(r.s.subscriptions) == before {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}
