package handler

import (
	"log/slog"
	"net/http"

	"foodiecircle/internal/delivery/api/response"
	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FollowHandlerParams holds dependencies for FollowHandler, injected by Fx.
type FollowHandlerParams struct {
	fx.In

	FollowUC usecase.FollowUsecase
	Logger   *slog.Logger
}

// FollowHandler serves the caller's follow relations
type FollowHandler struct {
	followUC usecase.FollowUsecase
	logger   *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler
func NewFollowHandler(params FollowHandlerParams) *FollowHandler {
	return &FollowHandler{
		followUC: params.FollowUC,
		logger:   params.Logger,
	}
}

// FollowQRRequest carries a scanned QR payload
type FollowQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// FollowStatusQuery selects the target of a status check
type FollowStatusQuery struct {
	UserID     string `query:"user_id"`
	Restaurant string `query:"restaurant"`
}

// ListSubscriptions handles GET /api/v1/follows
func (h *FollowHandler) ListSubscriptions(c echo.Context) error {
	subs, err := h.followUC.ListSubscriptions(c.Request().Context())
	if err != nil {
		return err
	}

	return response.List(c, subs)
}

// Status handles GET /api/v1/follows/status?user_id= or ?restaurant=
func (h *FollowHandler) Status(c echo.Context) error {
	var query FollowStatusQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid follow status query")
	}

	var userID *uuid.UUID
	if query.UserID != "" {
		parsed, err := uuid.Parse(query.UserID)
		if err != nil {
			return domainerrors.ErrInvalidFollowTarget.WithDetails("user_id must be a UUID")
		}
		userID = &parsed
	}
	var restaurant *string
	if query.Restaurant != "" {
		restaurant = &query.Restaurant
	}

	target, err := entity.NewFollowTarget(userID, restaurant)
	if err != nil {
		return domainerrors.ErrInvalidFollowTarget
	}

	state, err := h.followUC.FollowStatus(c.Request().Context(), target)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, state)
}

// Toggle handles POST /api/v1/follows/toggle
func (h *FollowHandler) Toggle(c echo.Context) error {
	var req usecase.FollowRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid follow request")
	}

	state, err := h.followUC.ToggleFollow(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, state)
}

// FollowByQR handles POST /api/v1/follows/qr
func (h *FollowHandler) FollowByQR(c echo.Context) error {
	var req FollowQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR follow request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	state, err := h.followUC.FollowByQR(c.Request().Context(), req.QRData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, state)
}

// Unsubscribe handles DELETE /api/v1/follows/:id
func (h *FollowHandler) Unsubscribe(c echo.Context) error {
	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	if err := h.followUC.Unsubscribe(c.Request().Context(), subscriptionID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
