package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is a push target registered by a follower. One row per
// (user_id, device_id); re-registering a device rewrites its token.
// fcm_token is indexed because invalid tokens are purged by value after a
// fan-out batch.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_owner,priority:1"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_owner,priority:2"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null;index:idx_user_devices_token"`
	Platform  string    `gorm:"type:varchar(16);not null;check:chk_user_devices_platform,platform IN ('ios','android')"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
