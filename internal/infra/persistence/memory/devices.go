package memory

import (
	"context"
	"slices"

	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct{ s *Store }

func cloneDevice(d *entity.UserDevice) *entity.UserDevice {
	c := *d

	return &c
}

func (r deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "insert", CollectionDevices); err != nil {
		return err
	}
	for _, d := range r.s.devices {
		if d.UserID == device.UserID && d.DeviceID == device.DeviceID {
			return repository.ErrDuplicateDevice
		}
	}
	device.ID = ensureID(device.ID)
	device.CreatedAt = r.s.stamp(device.CreatedAt)
	device.UpdatedAt = device.CreatedAt
	r.s.devices = append(r.s.devices, cloneDevice(device))

	return nil
}

func (r deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "find", CollectionDevices); err != nil {
		return nil, err
	}
	for _, d := range r.s.devices {
		if d.ID == id {
			return cloneDevice(d), nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

func (r deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return r.FindDevicesForUsers(ctx, []uuid.UUID{userID})
}

func (r deviceRepository) FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if err := r.s.check(ctx, "scan", CollectionDevices); err != nil {
		return nil, err
	}
	out := make([]*entity.UserDevice, 0)
	for _, d := range slices.Backward(r.s.devices) {
		if slices.Contains(userIDs, d.UserID) {
			out = append(out, cloneDevice(d))
		}
	}

	return out, nil
}

func (r deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "update", CollectionDevices); err != nil {
		return err
	}
	for _, d := range r.s.devices {
		if d.ID == deviceID {
			d.FCMToken = fcmToken
			d.UpdatedAt = r.s.now()

			return nil
		}
	}

	return repository.ErrDeviceNotFound
}

func (r deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "delete", CollectionDevices); err != nil {
		return err
	}
	before := len(r.s.devices)
	r.s.devices = deleteFirst(r.s.devices, func(d *entity.UserDevice) bool { return d.ID == id })
	if len(r.s.devices) == before {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (r deviceRepository) DeleteDevicesByTokens(ctx context.Context, tokens []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.check(ctx, "delete", CollectionDevices); err != nil {
		return err
	}
	r.s.devices = slices.DeleteFunc(r.s.devices, func(d *entity.UserDevice) bool {
		return slices.Contains(tokens, d.FCMToken)
	})

	return nil
}
