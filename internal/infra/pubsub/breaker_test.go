package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodiecircle/config"
	"foodiecircle/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	err    error
	calls  int
	closed bool
}

func (f *fakePublisher) PublishDishLogged(context.Context, *service.DishLoggedEvent) error {
	f.calls++

	return f.err
}

func (f *fakePublisher) Close() error {
	f.closed = true

	return nil
}

func TestBreakerPublisher_TripsAfterConsecutiveFailures(t *testing.T) {
	next := &fakePublisher{err: errors.New("broker down")}
	publisher := NewBreakerPublisher(next, &config.BreakerConfig{
		FailureThreshold: 2,
		Timeout:          time.Hour,
	}, discardLogger())

	event := &service.DishLoggedEvent{DishID: "dish-1"}
	ctx := context.Background()

	for range 2 {
		err := publisher.PublishDishLogged(ctx, event)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPublisherUnavailable)
	}

	err := publisher.PublishDishLogged(ctx, event)
	require.ErrorIs(t, err, ErrPublisherUnavailable)
	assert.Equal(t, 2, next.calls, "open breaker must not reach the broker")
}

func TestBreakerPublisher_PassesThroughSuccess(t *testing.T) {
	next := &fakePublisher{}
	publisher := NewBreakerPublisher(next, nil, discardLogger())

	require.NoError(t, publisher.PublishDishLogged(context.Background(), &service.DishLoggedEvent{DishID: "dish-1"}))
	assert.Equal(t, 1, next.calls)

	require.NoError(t, publisher.Close())
	assert.True(t, next.closed)
}

func TestBreakerSettings_Defaults(t *testing.T) {
	settings := breakerSettings(nil)

	assert.Equal(t, uint32(defaultBreakerMaxRequests), settings.MaxRequests)
	assert.Equal(t, defaultBreakerTimeout, settings.Timeout)
	assert.Equal(t, defaultBreakerInterval, settings.Interval)
	require.NotNil(t, settings.ReadyToTrip)
}
