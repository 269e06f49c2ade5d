package handler

import (
	"net/http"

	"foodiecircle/internal/delivery/api/response"
	"foodiecircle/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DishHandler serves dish logging
type DishHandler struct {
	dishUC usecase.DishUsecase
}

// NewDishHandler is the constructor for DishHandler
func NewDishHandler(dishUC usecase.DishUsecase) *DishHandler {
	return &DishHandler{dishUC: dishUC}
}

// LogDish handles POST /api/v1/dishes
func (h *DishHandler) LogDish(c echo.Context) error {
	var input usecase.DishInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dish input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	dish, err := h.dishUC.LogDish(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, dish)
}
