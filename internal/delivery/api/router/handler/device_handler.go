package handler

import (
	"net/http"

	"foodiecircle/internal/delivery/api/middleware"
	"foodiecircle/internal/delivery/api/response"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DeviceHandler manages the caller's push targets. Every route acts on the
// authenticated user only.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

func NewDeviceHandler(deviceUC usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{deviceUC: deviceUC}
}

// UpdateFCMTokenRequest is the body of PUT /devices/:id/token.
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

var errInvalidDeviceID = domainerrors.ErrValidationFailed.WithDetails("device id must be a UUID")

func caller(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

func deviceIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidDeviceID
	}

	return id, nil
}

// RegisterDevice handles POST /api/v1/devices. Registering a known device_id
// again replaces its token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}

	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles GET /api/v1/devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.List(c, devices)
}

// UpdateFCMToken handles PUT /api/v1/devices/:id/token
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveDevice handles DELETE /api/v1/devices/:id
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return err
	}
	deviceID, err := deviceIDParam(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), userID, deviceID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
