package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"foodiecircle/internal/delivery/api/response"
	"foodiecircle/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	FollowUC usecase.FollowUsecase
	Logger   *slog.Logger
}

// SearchHandler serves discovery endpoints
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	followUC usecase.FollowUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		followUC: params.FollowUC,
		logger:   params.Logger,
	}
}

// Search handles GET /api/v1/search?q=&category=&city=&cuisine=&occasion=
func (h *SearchHandler) Search(c echo.Context) error {
	var state usecase.SearchState
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &state); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid search query")
	}

	result, err := h.searchUC.Search(c.Request().Context(), state)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// FilterOptions handles GET /api/v1/search/filters
func (h *SearchHandler) FilterOptions(c echo.Context) error {
	options, err := h.searchUC.FilterOptions(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, options)
}

// RestaurantDetail handles GET /api/v1/restaurants/:name
func (h *SearchHandler) RestaurantDetail(c echo.Context) error {
	detail, err := h.searchUC.RestaurantDetail(c.Request().Context(), restaurantParam(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, detail)
}

// RestaurantQR handles GET /api/v1/restaurants/:name/qr and returns a PNG
func (h *SearchHandler) RestaurantQR(c echo.Context) error {
	png, err := h.followUC.RestaurantQR(c.Request().Context(), restaurantParam(c))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func restaurantParam(c echo.Context) string {
	raw := c.Param("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}

	return raw
}
