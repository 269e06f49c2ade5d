package repository

import (
	"context"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores follower push targets. Lookups that miss return
// ErrDeviceNotFound; every other failure is a store error.
type DeviceRepository interface {
	// CreateDevice inserts the device and fills in its generated ID and timestamps.
	// A second registration of the same (user, device_id) yields ErrDuplicateDevice.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindDevicesForUsers loads the push targets of a follower set in one query.
	FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevicesByTokens purges devices whose token the push provider rejected.
	DeleteDevicesByTokens(ctx context.Context, tokens []string) error
}
