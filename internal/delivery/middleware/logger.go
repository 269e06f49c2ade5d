package middleware

import (
	"log/slog"
	"time"

	"foodiecircle/config"
	deliverycontext "foodiecircle/internal/delivery/context"
	"foodiecircle/internal/domain/identity"

	"github.com/labstack/echo/v4"
)

// Probe routes are never access-logged.
var quietRoutes = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// AccessLogMiddleware writes one line per request. Failed requests are always
// logged; successful ones only in debug mode.
type AccessLogMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if _, quiet := quietRoutes[c.Path()]; quiet {
			return err
		}

		status := c.Response().Status
		if level, ok := m.levelFor(status, err); ok {
			m.logger.LogAttrs(c.Request().Context(), level, "HTTP Request", m.attrs(c, start, err)...)
		}

		return err
	}
}

func (m *AccessLogMiddleware) levelFor(status int, err error) (slog.Level, bool) {
	switch {
	case status >= 500:
		return slog.LevelError, true
	case status >= 400 || err != nil:
		return slog.LevelWarn, true
	case m.debug:
		return slog.LevelInfo, true
	default:
		return 0, false
	}
}

func (m *AccessLogMiddleware) attrs(c echo.Context, start time.Time, err error) []slog.Attr {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", c.Response().Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := identity.FromContext(req.Context()); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}
