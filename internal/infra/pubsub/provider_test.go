package pubsub

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"foodiecircle/config"
	"foodiecircle/internal/domain/constants"
	"foodiecircle/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) (PublisherParams, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)

	return PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewEventPublisher_Unconfigured(t *testing.T) {
	params, _ := newParams(t, &config.Config{})

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishDishLogged(context.Background(), &service.DishLoggedEvent{DishID: "d-1"}))
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := map[string]*config.PubSubConfig{
		"local without endpoint": {Provider: constants.PubSubProviderLocal},
		"google without topic":   {Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
		"google without project": {Provider: constants.PubSubProviderGoogle, TopicID: "t"},
		"unknown provider":       {Provider: "kafka"},
	}

	for name, pubsubCfg := range tests {
		t.Run(name, func(t *testing.T) {
			params, _ := newParams(t, &config.Config{PubSub: pubsubCfg})

			_, err := NewEventPublisher(params)
			assert.Error(t, err)
		})
	}
}

func TestNewEventPublisher_LocalIsGuardedAndClosedOnStop(t *testing.T) {
	var received atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	params, lc := newParams(t, &config.Config{PubSub: &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: srv.URL,
	}})

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)
	assert.IsType(t, &breakerPublisher{}, publisher)

	require.NoError(t, publisher.PublishDishLogged(context.Background(), &service.DishLoggedEvent{
		DishID:   "d-1",
		AuthorID: "a-1",
		DishName: "Tonkotsu",
	}))
	assert.Equal(t, int32(1), received.Load())

	lc.RequireStart().RequireStop()
}
