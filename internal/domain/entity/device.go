package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the operating system a push target runs on.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// UserDevice is a push target for dish notifications from followed users and
// restaurants. DeviceID is chosen by the client and unique per owner; FCMToken
// rotates and is replaced in place.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DeviceID  string    `json:"device_id"`
	FCMToken  string    `json:"fcm_token"`
	Platform  Platform  `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether userID registered the device.
func (d *UserDevice) OwnedBy(userID uuid.UUID) bool {
	return d.UserID == userID
}
