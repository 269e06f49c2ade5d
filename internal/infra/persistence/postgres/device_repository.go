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

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) devices(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.UserDeviceModel{})
}

// CreateDevice maps a collision on (user_id, device_id) to ErrDuplicateDevice
// so the usecase can fall back to a token refresh.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	row := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).Create(row).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateDevice
	default:
		return storeError("insert", collectionDevices, err)
	}

	device.ID, device.CreatedAt, device.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel

	err := repo.devices(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, storeError("find", collectionDevices, err)
	}

	return toDeviceDomain(&row), nil
}

func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.list(repo.devices(ctx).Where("user_id = ?", userID))
}

func (repo *deviceRepository) FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return []*entity.UserDevice{}, nil
	}

	return repo.list(repo.devices(ctx).Where("user_id IN ?", userIDs))
}

// list returns the newest registrations first.
func (repo *deviceRepository) list(query *gorm.DB) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, storeError("scan", collectionDevices, err)
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = toDeviceDomain(row)
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	return affectedOne("update", repo.devices(ctx).Where("id = ?", deviceID).Update("fcm_token", fcmToken))
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	return affectedOne("delete", repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserDeviceModel{}))
}

// DeleteDevicesByTokens is idempotent; tokens that match nothing are ignored.
func (repo *deviceRepository) DeleteDevicesByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).Where("fcm_token IN ?", tokens).Delete(&model.UserDeviceModel{}).Error
	if err != nil {
		return storeError("delete", collectionDevices, err)
	}

	return nil
}

// affectedOne turns a write that touched no row into ErrDeviceNotFound.
func affectedOne(op string, result *gorm.DB) error {
	if result.Error != nil {
		return storeError(op, collectionDevices, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  string(data.Platform),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
