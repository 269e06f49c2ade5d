package impl

import (
	"context"
	"slices"
	"time"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
}

func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
}

// RegisterDevice inserts the device, or rotates the token when the caller
// already registered the same device_id.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	now := s.now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		DeviceID:  info.DeviceID,
		FCMToken:  info.FCMToken,
		Platform:  info.Platform,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.deviceRepo.CreateDevice(ctx, device)
	switch {
	case err == nil:
		return device, nil
	case errors.Is(err, repository.ErrDuplicateDevice):
		return s.rotateToken(ctx, userID, info)
	default:
		return nil, errors.Wrap(err, "failed to create device")
	}
}

func (s *deviceService) rotateToken(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	idx := slices.IndexFunc(devices, func(d *entity.UserDevice) bool { return d.DeviceID == info.DeviceID })
	if idx < 0 {
		// Removed between the insert and the lookup.
		return nil, domainerrors.ErrDeviceNotFound
	}
	device := devices[idx]

	if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
		return nil, errors.Wrap(err, "failed to update FCM token")
	}
	device.FCMToken = info.FCMToken
	device.UpdatedAt = s.now()

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return s.translate(err, "failed to update FCM token")
	}

	return nil
}

func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return s.translate(err, "failed to delete device")
	}

	return nil
}

// ownedDevice hides other users' devices behind ErrForbidden.
func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, s.translate(err, "failed to find device by ID")
	}

	if !device.OwnedBy(userID) {
		return nil, domainerrors.ErrForbidden.WithDetails("device belongs to another user")
	}

	return device, nil
}

func (s *deviceService) translate(err error, msg string) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}

	return errors.Wrap(err, msg)
}
