package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodiecircle/config"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger bridges GORM statement tracing to slog and the store metrics.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        base,
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Store != nil && cfg.Store.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Store.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "Record store", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace observes every statement. Failures and slow statements are logged at
// error and warn; everything else only in debug mode.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	statement, rows := fc()

	metrics.StoreQueryDuration.WithLabelValues(statementKind(statement)).Observe(elapsed.Seconds())
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	if slow {
		metrics.StoreSlowQueriesTotal.Inc()
	}

	if l.logger == nil || l.level == logger.Silent {
		return
	}

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", statement),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		l.logger.LogAttrs(ctx, slog.LevelError, "Record store statement failed", append(attrs, slog.Any("error", err))...)
	case slow && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Record store slow statement", append(attrs, slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Record store statement", attrs...)
	}
}

// statementKind labels a statement by its leading keyword.
func statementKind(statement string) string {
	keyword, _, _ := strings.Cut(strings.TrimSpace(statement), " ")
	switch strings.ToLower(keyword) {
	case "select", "insert", "delete", "update":
		return strings.ToLower(keyword)
	default:
		return "other"
	}
}
