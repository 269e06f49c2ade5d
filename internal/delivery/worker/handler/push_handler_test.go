package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodiecircle/config"
	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/infra/persistence/memory"
	mockservice "foodiecircle/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	store    *memory.Store
	notifier *mockservice.MockNotificationService
	handler  *PushHandler
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	store := memory.NewStore()
	notifier := mockservice.NewMockNotificationService(t)

	return &pushFixture{
		store:    store,
		notifier: notifier,
		handler: NewPushHandler(PushHandlerParams{
			Config:           &config.Config{},
			Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
			NotificationSvc:  notifier,
			SubscriptionRepo: store.Subscriptions(),
			ProfileRepo:      store.Profiles(),
			DeviceRepo:       store.Devices(),
		}),
	}
}

func (f *pushFixture) follow(t *testing.T, subscriber uuid.UUID, target entity.FollowTarget) {
	t.Helper()
	require.NoError(t, f.store.Subscriptions().CreateSubscription(context.Background(), &entity.Subscription{
		SubscriberID: subscriber,
		Target:       target,
	}))
}

func (f *pushFixture) device(t *testing.T, userID uuid.UUID, token string) {
	t.Helper()
	require.NoError(t, f.store.Devices().CreateDevice(context.Background(), &entity.UserDevice{
		UserID:   userID,
		FCMToken: token,
		DeviceID: "device-" + token,
		Platform: entity.PlatformIOS,
	}))
}

func (f *pushFixture) push(t *testing.T, payload string) *httptest.ResponseRecorder {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = payload
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, f.handler.HandlePush(c))

	return rec
}

func encodeEvent(t *testing.T, event service.DishLoggedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func TestHandlePush_NotifiesAuthorAndRestaurantFollowers(t *testing.T) {
	f := newPushFixture(t)
	ctx := context.Background()

	author := uuid.New()
	userFollower := uuid.New()
	restaurantFollower := uuid.New()
	both := uuid.New()
	stranger := uuid.New()

	require.NoError(t, f.store.Profiles().CreateProfile(ctx, &entity.Profile{ID: author, Username: "ann"}))

	f.follow(t, userFollower, entity.UserTarget(author))
	f.follow(t, restaurantFollower, entity.RestaurantTarget("Ichiran"))
	f.follow(t, both, entity.UserTarget(author))
	f.follow(t, both, entity.RestaurantTarget("Ichiran"))
	f.follow(t, author, entity.RestaurantTarget("Ichiran"))
	f.follow(t, stranger, entity.RestaurantTarget("Burger Co"))

	f.device(t, userFollower, "tok-user")
	f.device(t, restaurantFollower, "tok-restaurant")
	f.device(t, both, "tok-both")
	f.device(t, author, "tok-author")
	f.device(t, stranger, "tok-stranger")

	f.notifier.EXPECT().SendBatch(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, tokens []string, msg service.PushMessage) (service.BatchResult, error) {
			assert.ElementsMatch(t, []string{"tok-user", "tok-restaurant", "tok-both"}, tokens)
			assert.Equal(t, "ann logged a dish", msg.Title)
			assert.Equal(t, "Tonkotsu at Ichiran, Tokyo", msg.Body)
			assert.Equal(t, "Ichiran", msg.Data["restaurant"])

			return service.BatchResult{Sent: 2, Failed: 1, InvalidTokens: []string{"tok-restaurant"}}, nil
		}).Once()

	rec := f.push(t, encodeEvent(t, service.DishLoggedEvent{
		DishID:         uuid.NewString(),
		AuthorID:       author.String(),
		DishName:       "Tonkotsu",
		RestaurantName: "Ichiran",
		Place:          "Tokyo",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)

	remaining, err := f.store.Devices().FindDevicesByUser(ctx, restaurantFollower)
	require.NoError(t, err)
	assert.Empty(t, remaining, "invalid token is removed")

	kept, err := f.store.Devices().FindDevicesByUser(ctx, userFollower)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestHandlePush_WithoutRestaurantOnlyAuthorFollowers(t *testing.T) {
	f := newPushFixture(t)

	author := uuid.New()
	follower := uuid.New()
	restaurantFollower := uuid.New()
	f.follow(t, follower, entity.UserTarget(author))
	f.follow(t, restaurantFollower, entity.RestaurantTarget("Ichiran"))
	f.device(t, follower, "tok-follower")
	f.device(t, restaurantFollower, "tok-restaurant")

	f.notifier.EXPECT().SendBatch(mock.Anything, []string{"tok-follower"}, mock.MatchedBy(func(msg service.PushMessage) bool {
		_, hasRestaurant := msg.Data["restaurant"]

		return msg.Title == "Someone you follow logged a dish" && msg.Body == "Home pasta" && !hasRestaurant
	})).Return(service.BatchResult{Sent: 1}, nil).Once()

	rec := f.push(t, encodeEvent(t, service.DishLoggedEvent{
		DishID:   uuid.NewString(),
		AuthorID: author.String(),
		DishName: "Home pasta",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BatchesTokens(t *testing.T) {
	f := newPushFixture(t)

	author := uuid.New()
	follower := uuid.New()
	f.follow(t, follower, entity.UserTarget(author))
	for i := range service.MaxBatchTokens + 1 {
		f.device(t, follower, fmt.Sprintf("tok-%03d", i))
	}

	var sizes []int
	f.notifier.EXPECT().SendBatch(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, tokens []string, msg service.PushMessage) (service.BatchResult, error) {
			sizes = append(sizes, len(tokens))

			return service.BatchResult{Sent: len(tokens)}, nil
		}).Times(2)

	rec := f.push(t, encodeEvent(t, service.DishLoggedEvent{DishID: uuid.NewString(), AuthorID: author.String(), DishName: "Soup"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{service.MaxBatchTokens, 1}, sizes)
}

func TestHandlePush_NoFollowersSendsNothing(t *testing.T) {
	f := newPushFixture(t)

	rec := f.push(t, encodeEvent(t, service.DishLoggedEvent{DishID: uuid.NewString(), AuthorID: uuid.NewString(), DishName: "Soup"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StoreFailureIsRetried(t *testing.T) {
	f := newPushFixture(t)
	f.store.FailCollection(memory.CollectionSubscriptions, errors.New("connection reset"))

	rec := f.push(t, encodeEvent(t, service.DishLoggedEvent{DishID: uuid.NewString(), AuthorID: uuid.NewString(), DishName: "Soup"}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	f := newPushFixture(t)

	t.Run("bad base64", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, f.push(t, "%%%").Code)
	})

	t.Run("bad json", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, f.push(t, base64.StdEncoding.EncodeToString([]byte("{"))).Code)
	})

	t.Run("bad author is acknowledged", func(t *testing.T) {
		rec := f.push(t, encodeEvent(t, service.DishLoggedEvent{DishID: uuid.NewString(), AuthorID: "nope"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlePush_RejectsUnauthenticatedPush(t *testing.T) {
	f := newPushFixture(t)
	f.handler.authenticate = func(*http.Request) error { return errors.New("no token") }

	rec := f.push(t, encodeEvent(t, service.DishLoggedEvent{DishID: uuid.NewString(), AuthorID: uuid.NewString()}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_AuthOnlyForGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		env      string
		want     bool
	}{
		{"google in production", "google", "production", true},
		{"google in develop", "google", "develop", false},
		{"local in production", "local", "production", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})

			assert.Equal(t, tt.want, h.authenticate != nil)
		})
	}
}

func TestAckStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, ackStatus(nil))
	assert.Equal(t, http.StatusOK, ackStatus(errors.New("bad author")))
	assert.Equal(t, http.StatusServiceUnavailable, ackStatus(newRetryableError(errors.New("store down"))))
}
