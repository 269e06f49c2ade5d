package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "foodiecircle/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestList(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, List[string](c, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"request_id":"req-1","count":0}}`, rec.Body.String())
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"name": "Ichiran"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"name":"Ichiran"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DetailsDroppedForOpaqueStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, `{"error":{"code":"C","message":"m","details":"why"},"meta":{"request_id":"req-1"}}`},
		{http.StatusForbidden, `{"error":{"code":"C","message":"m"},"meta":{"request_id":"req-1"}}`},
		{http.StatusInternalServerError, `{"error":{"code":"C","message":"m"},"meta":{"request_id":"req-1"}}`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "C", "m", "why"))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
