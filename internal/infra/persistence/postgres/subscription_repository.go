package postgres

import (
	"context"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// ScanSubscriptions returns subscriptions matching pred in insertion order.
func (repo *subscriptionRepository) ScanSubscriptions(ctx context.Context, pred repository.Predicate, limit int) ([]*entity.Subscription, error) {
	query, err := scanQuery(repo.db.WithContext(ctx).Model(&model.SubscriptionModel{}), subscriptionColumns, insertionOrder, pred, limit)
	if err != nil {
		return nil, storeError("scan", collectionSubscriptions, err)
	}

	var subscriptionModels []*model.SubscriptionModel
	if err := query.Find(&subscriptionModels).Error; err != nil {
		return nil, storeError("scan", collectionSubscriptions, err)
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, storeError("find", collectionSubscriptions, err)
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// CreateSubscription persists a new follow relation.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		return storeError("insert", collectionSubscriptions, err)
	}

	// Update the entity with generated values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// DeleteSubscription removes a subscription by its ID (hard delete).
func (repo *subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return storeError("delete", collectionSubscriptions, result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	subscription := &entity.Subscription{
		ID:           data.ID,
		SubscriberID: data.UserID,
		CreatedAt:    data.CreatedAt,
	}
	switch {
	case data.SubscribedToUserID != nil:
		subscription.Target = entity.UserTarget(*data.SubscribedToUserID)
	case data.SubscribedToRestaurant != nil:
		subscription.Target = entity.RestaurantTarget(*data.SubscribedToRestaurant)
	}

	return subscription
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	subscriptionM := &model.SubscriptionModel{
		ID:        data.ID,
		UserID:    data.SubscriberID,
		CreatedAt: data.CreatedAt,
	}
	switch data.Target.Kind {
	case entity.TargetUser:
		userID := data.Target.UserID
		subscriptionM.SubscribedToUserID = &userID
	case entity.TargetRestaurant:
		name := data.Target.RestaurantName
		subscriptionM.SubscribedToRestaurant = &name
	}

	return subscriptionM
}
