// Package postgres implements the record store over PostgreSQL with GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"foodiecircle/config"
	"foodiecircle/internal/domain/lifecycle"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the record store connection. The returned session runs each
// repository call as one statement and reports through slog and Prometheus.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres store driver")
	}

	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect record store")
	}
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get record store sql.DB")
	}

	sampler := &poolSampler{logger: params.Logger, db: sqlDB}
	stopSampling := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "record store unreachable")
			}
			params.Logger.Info("Record store connected", slog.String("driver", config.StoreDriverPostgres))

			samplingCtx, cancelSampling := context.WithCancel(context.Background())
			stopSampling = cancelSampling
			go sampler.run(samplingCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolSampler publishes connection pool gauges and warns when callers queue for connections.
type poolSampler struct {
	logger *slog.Logger
	db     *sql.DB
	last   sql.DBStats
}

func (p *poolSampler) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.last = p.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sample(ctx)
		}
	}
}

func (p *poolSampler) sample(ctx context.Context) {
	cur := p.db.Stats()
	defer func() { p.last = cur }()

	metrics.StorePoolConnections.WithLabelValues("open").Set(float64(cur.OpenConnections))
	metrics.StorePoolConnections.WithLabelValues("in_use").Set(float64(cur.InUse))
	metrics.StorePoolConnections.WithLabelValues("idle").Set(float64(cur.Idle))

	waits := cur.WaitCount - p.last.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - p.last.WaitDuration
	metrics.StorePoolWaitSeconds.Add(waited.Seconds())

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}
	p.logger.LogAttrs(ctx, level, "Record store callers waited for a connection",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
	)
}
