package handler

import (
	"net/http"

	"foodiecircle/internal/delivery/api/response"
	"foodiecircle/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler serves the caller's taste preferences
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(preferenceUC usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{preferenceUC: preferenceUC}
}

// UpdatePreferencesRequest replaces the favourite cuisine list
type UpdatePreferencesRequest struct {
	FavoriteCuisines []string `json:"favorite_cuisine" validate:"required,dive,max=50"`
}

// GetPreferences handles GET /api/v1/preferences
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	pref, err := h.preferenceUC.GetPreferences(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pref)
}

// UpdatePreferences handles PUT /api/v1/preferences
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid preferences input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pref, err := h.preferenceUC.UpdateFavoriteCuisines(c.Request().Context(), req.FavoriteCuisines)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pref)
}
