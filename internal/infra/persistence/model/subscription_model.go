package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is one follow edge in the 'subscriptions' table. The check
// constraint keeps exactly one target column set. Duplicate edges are allowed;
// the follow tracker tolerates them.
type SubscriptionModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                 uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubscribedToUserID     *uuid.UUID `gorm:"column:subscribed_to_user_id;type:uuid;index;check:chk_subscriptions_one_target,(subscribed_to_user_id IS NULL) <> (subscribed_to_restaurant IS NULL)"`
	SubscribedToRestaurant *string    `gorm:"column:subscribed_to_restaurant;type:varchar(200);index"`
	CreatedAt              time.Time  `gorm:"not null;index"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
