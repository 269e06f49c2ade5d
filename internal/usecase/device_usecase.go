package usecase

import (
	"context"

	"foodiecircle/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string          `json:"fcm_token" validate:"required"`
	DeviceID string          `json:"device_id" validate:"required"`
	Platform entity.Platform `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceUsecase defines the interface for push device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices retrieves all devices registered by a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice deletes a device owned by the user
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
