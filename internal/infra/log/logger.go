// Package logs builds the process-wide structured logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"foodiecircle/config"
	"foodiecircle/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the logger every component receives. Each line carries the
// service name and environment when they are configured.
func New(params Params) (*slog.Logger, error) {
	logger, err := newLogger(os.Stdout, params.Config.Env.Log)
	if err != nil {
		return nil, err
	}

	return withServiceAttrs(logger, params.Config.Env.ServiceName, params.Config.Env.Env), nil
}

func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler), nil
}

func withServiceAttrs(logger *slog.Logger, service, env string) *slog.Logger {
	var attrs []any
	if service != "" {
		attrs = append(attrs, slog.String("service", service))
	}
	if env != "" {
		attrs = append(attrs, slog.String("env", env))
	}
	if len(attrs) == 0 {
		return logger
	}

	return logger.With(attrs...)
}

// parseLogLevel converts string log level to slog.Level. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
