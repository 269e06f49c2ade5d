package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodiecircle/config"
	"foodiecircle/internal/domain/identity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccessLogEcho(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	mw := NewAccessLogMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e := echo.New()
	e.Use(mw.Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return c.NoContent(http.StatusServiceUnavailable) })
	e.GET("/me", func(c echo.Context) error {
		c.SetRequest(c.Request().WithContext(identity.WithUserID(c.Request().Context(), uuid.MustParse("11111111-1111-1111-1111-111111111111"))))

		return c.NoContent(http.StatusNotFound)
	})

	return e, &buf
}

func serve(e *echo.Echo, target string) {
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
}

func TestAccessLog_SuccessOnlyInDebug(t *testing.T) {
	e, buf := newAccessLogEcho(t, false)
	serve(e, "/ok")
	assert.Empty(t, buf.String())

	e, buf = newAccessLogEcho(t, true)
	serve(e, "/ok?q=ramen")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "/ok", line["route"])
	assert.Equal(t, "q=ramen", line["query"])
}

func TestAccessLog_FailuresAlwaysLogged(t *testing.T) {
	e, buf := newAccessLogEcho(t, false)
	serve(e, "/fail")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, float64(http.StatusServiceUnavailable), line["status"])
}

func TestAccessLog_IncludesCaller(t *testing.T) {
	e, buf := newAccessLogEcho(t, false)
	serve(e, "/me")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", line["user_id"])
}

func TestAccessLog_SkipsProbes(t *testing.T) {
	e, buf := newAccessLogEcho(t, true)
	serve(e, "/health")

	assert.Empty(t, buf.String())
}
