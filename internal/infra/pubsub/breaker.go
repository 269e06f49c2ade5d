package pubsub

import (
	"context"
	"log/slog"
	"time"

	"foodiecircle/config"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/metrics"

	"github.com/sony/gobreaker/v2"
)

const (
	breakerName = "event-publisher"

	defaultBreakerMaxRequests      = 1
	defaultBreakerInterval         = time.Minute
	defaultBreakerTimeout          = 30 * time.Second
	defaultBreakerFailureThreshold = 5
)

// ErrPublisherUnavailable is returned while the breaker rejects calls.
var ErrPublisherUnavailable = errors.New("event publisher unavailable: circuit open")

// breakerPublisher stops hammering a failing broker. Rejected publishes fail fast
// with ErrPublisherUnavailable until the breaker half-opens.
type breakerPublisher struct {
	next   service.EventPublisher
	cb     *gobreaker.CircuitBreaker[any]
	logger *slog.Logger
}

// NewBreakerPublisher wraps next with a circuit breaker configured by cfg.
// A nil cfg uses defaults.
func NewBreakerPublisher(next service.EventPublisher, cfg *config.BreakerConfig, logger *slog.Logger) service.EventPublisher {
	settings := breakerSettings(cfg)
	settings.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warn("circuit breaker state changed",
			slog.String("name", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(stateToFloat(gobreaker.StateClosed))

	return &breakerPublisher{
		next:   next,
		cb:     gobreaker.NewCircuitBreaker[any](settings),
		logger: logger,
	}
}

func breakerSettings(cfg *config.BreakerConfig) gobreaker.Settings {
	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: defaultBreakerMaxRequests,
		Interval:    defaultBreakerInterval,
		Timeout:     defaultBreakerTimeout,
	}
	threshold := uint32(defaultBreakerFailureThreshold)

	if cfg != nil {
		if cfg.MaxRequests > 0 {
			settings.MaxRequests = cfg.MaxRequests
		}
		if cfg.Interval > 0 {
			settings.Interval = cfg.Interval
		}
		if cfg.Timeout > 0 {
			settings.Timeout = cfg.Timeout
		}
		if cfg.FailureThreshold > 0 {
			threshold = cfg.FailureThreshold
		}
	}

	settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= threshold
	}

	return settings
}

func (p *breakerPublisher) PublishDishLogged(ctx context.Context, event *service.DishLoggedEvent) error {
	_, err := p.cb.Execute(func() (any, error) {
		return nil, p.next.PublishDishLogged(ctx, event)
	})

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()

		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		p.logger.DebugContext(ctx, "publish rejected by circuit breaker",
			slog.String("dish_id", event.DishID),
		)

		return errors.WithStack(ErrPublisherUnavailable)
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()

		return err
	}
}

func (p *breakerPublisher) Close() error {
	return p.next.Close()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
