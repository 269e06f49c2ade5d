package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodiecircle/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishDishLogged(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	event := &service.DishLoggedEvent{
		RequestID:      "req-1",
		DishID:         "dish-1",
		AuthorID:       "author-1",
		DishName:       "Salmon nigiri",
		RestaurantName: "Sushi Master",
		LoggedAt:       "2026-03-01T11:59:00Z",
	}

	require.NoError(t, publisher.PublishDishLogged(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "dish-1", got.Message.MessageID)
	assert.Equal(t, "2026-03-01T12:00:00Z", got.Message.PublishTime)
	assert.Equal(t, map[string]string{
		"event":      "dish_logged",
		"dish_id":    "dish-1",
		"author_id":  "author-1",
		"request_id": "req-1",
	}, got.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.DishLoggedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishDishLogged(context.Background(), &service.DishLoggedEvent{DishID: "dish-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
