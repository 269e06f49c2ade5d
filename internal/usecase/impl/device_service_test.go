package impl

import (
	"context"
	"testing"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/infra/persistence/memory"
	mockRepo "foodiecircle/internal/mocks/repository"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewDeviceService(store.Devices())
	userID := uuid.New()

	first, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-1",
		DeviceID: "pixel",
		Platform: entity.PlatformAndroid,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, first.UserID)
	assert.Equal(t, entity.PlatformAndroid, first.Platform)
	assert.False(t, first.CreatedAt.IsZero())

	t.Run("same device rotates the token", func(t *testing.T) {
		again, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
			FCMToken: "token-2",
			DeviceID: "pixel",
			Platform: entity.PlatformAndroid,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "token-2", again.FCMToken)

		devices, err := svc.GetUserDevices(ctx, userID)
		require.NoError(t, err)
		require.Len(t, devices, 1)
		assert.Equal(t, "token-2", devices[0].FCMToken)
	})

	t.Run("another user keeps a separate row", func(t *testing.T) {
		other, err := svc.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{
			FCMToken: "token-3",
			DeviceID: "pixel",
			Platform: entity.PlatformAndroid,
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, other.ID)
	})
}

func TestDeviceService_RegisterDevice_CreateError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewStoreError("insert", "user_devices", errors.New("connection reset"))

	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(storeErr)

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{DeviceID: "pixel"})
	require.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestDeviceService_RegisterDevice_DuplicateVanished(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)
	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceID: "pixel", FCMToken: "t"})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name    string
		setup   func(repo *mockRepo.MockDeviceRepository)
		wantErr error
	}{
		{
			name: "success",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				repo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(nil)
			},
		},
		{
			name: "not found",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "owned by someone else",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx.deviceRepo)

			err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-token")
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, DeviceID: "phone"},
		{ID: uuid.New(), UserID: userID, DeviceID: "tablet"},
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	require.NoError(t, fx.service.RemoveDevice(ctx, userID, deviceID))
}

func TestDeviceService_RemoveDevice_DeleteError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	storeErr := domainerrors.NewStoreError("delete", "user_devices", errors.New("connection reset"))

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(storeErr)

	err := fx.service.RemoveDevice(ctx, userID, deviceID)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}
