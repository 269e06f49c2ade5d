package middleware

import (
	"log/slog"
	"net/http"

	"foodiecircle/internal/delivery/api/response"
	deliverycontext "foodiecircle/internal/delivery/context"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// StoreErrorDetails tells clients a store failure may be retried.
type StoreErrorDetails struct {
	Retryable bool   `json:"retryable"`
	Operation string `json:"operation"`
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if storeErr, ok := errors.AsType[*domainerrors.StoreError](err); ok {
		metrics.StoreErrorsTotal.WithLabelValues(storeErr.Op(), storeErr.Collection()).Inc()
		logger.Error("Record store failure",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
		)

		_ = response.Error(c, storeErr.HTTPCode(), storeErr.ErrorCode(), storeErr.Message(), StoreErrorDetails{
			Retryable: storeErr.Retryable(),
			Operation: storeErr.Details(),
		})

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
