// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "foodiecircle/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every body the API writes. Exactly one of Data or Error is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// ErrorInfo is the machine readable failure description.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta carries request tracking data. Count is set for list payloads.
type Meta struct {
	RequestID string `json:"request_id"`
	Count     *int   `json:"count,omitempty"`
}

// Statuses whose details never reach the client.
var opaqueStatuses = map[int]struct{}{
	http.StatusUnauthorized:        {},
	http.StatusForbidden:           {},
	http.StatusInternalServerError: {},
}

func write(c echo.Context, status int, env Envelope) error {
	env.Meta.RequestID = deliverycontext.GetRequestID(c)

	return c.JSON(status, env)
}

// Success writes data with the given status.
func Success(c echo.Context, status int, data any) error {
	return write(c, status, Envelope{Data: data})
}

// List writes a collection and its size. A nil slice renders as [].
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	count := len(items)

	return write(c, http.StatusOK, Envelope{Data: items, Meta: Meta{Count: &count}})
}

// Error writes a failure envelope.
func Error(c echo.Context, status int, code, message string, details any) error {
	if _, opaque := opaqueStatuses[status]; opaque {
		details = nil
	}

	return write(c, status, Envelope{Error: &ErrorInfo{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

func BadRequest(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}
