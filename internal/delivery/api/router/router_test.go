package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "foodiecircle/internal/delivery/api/middleware"
	"foodiecircle/internal/delivery/api/router/handler"
	"foodiecircle/internal/delivery/api/validator"
	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"
	mockservice "foodiecircle/internal/mocks/service"
	mockusecase "foodiecircle/internal/mocks/usecase"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo       *echo.Echo
	tokens     *mockservice.MockTokenService
	search     *mockusecase.MockSearchUsecase
	follow     *mockusecase.MockFollowUsecase
	dish       *mockusecase.MockDishUsecase
	preference *mockusecase.MockPreferenceUsecase
	device     *mockusecase.MockDeviceUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServer{
		echo:       echo.New(),
		tokens:     mockservice.NewMockTokenService(t),
		search:     mockusecase.NewMockSearchUsecase(t),
		follow:     mockusecase.NewMockFollowUsecase(t),
		dish:       mockusecase.NewMockDishUsecase(t),
		preference: mockusecase.NewMockPreferenceUsecase(t),
		device:     mockusecase.NewMockDeviceUsecase(t),
	}

	s.echo.Validator = validator.New()
	s.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		SearchHandler: handler.NewSearchHandler(handler.SearchHandlerParams{
			SearchUC: s.search,
			FollowUC: s.follow,
			Logger:   logger,
		}),
		FollowHandler: handler.NewFollowHandler(handler.FollowHandlerParams{
			FollowUC: s.follow,
			Logger:   logger,
		}),
		DishHandler:       handler.NewDishHandler(s.dish),
		PreferenceHandler: handler.NewPreferenceHandler(s.preference),
		DeviceHandler:     handler.NewDeviceHandler(s.device),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(s.tokens),
	}).RegisterRoutes(s.echo)

	return s
}

func (s *testServer) authorize(token string, userID uuid.UUID) {
	s.tokens.EXPECT().ValidateAccessToken(token).Return(&service.Claims{UserID: userID}, nil).Once()
}

func (s *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSearch_AnonymousPassesStateThrough(t *testing.T) {
	s := newTestServer(t)

	want := usecase.SearchState{Text: "ramen", Category: "restaurants", City: "Tokyo", Occasion: "date"}
	s.search.EXPECT().Search(mock.Anything, want).
		RunAndReturn(func(ctx context.Context, state usecase.SearchState) (*usecase.SearchResult, error) {
			_, ok := identity.FromContext(ctx)
			assert.False(t, ok)

			return &usecase.SearchResult{
				State:    state,
				Category: usecase.CategoryRestaurants,
				Restaurants: []entity.RestaurantResult{
					{RestaurantAggregate: entity.RestaurantAggregate{Name: "Ichiran", ContributingDishCount: 2}},
				},
			}, nil
		})

	rec := s.do(http.MethodGet, "/api/v1/search?q=ramen&category=restaurants&city=Tokyo&occasion=date", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ichiran"`)
	assert.Contains(t, rec.Body.String(), `"is_followed":false`)
}

func TestSearch_AuthenticatedCarriesIdentity(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	s.authorize("good", userID)

	s.search.EXPECT().Search(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, state usecase.SearchState) (*usecase.SearchResult, error) {
			got, ok := identity.FromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, userID, got)

			return &usecase.SearchResult{State: state, Category: usecase.CategoryPeople}, nil
		})

	rec := s.do(http.MethodGet, "/api/v1/search?q=ann", "good", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearch_InvalidTokenRejected(t *testing.T) {
	s := newTestServer(t)
	s.tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))

	rec := s.do(http.MethodGet, "/api/v1/search", "bad", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Error.Code)
}

func TestSearch_StoreErrorIsRetryable(t *testing.T) {
	s := newTestServer(t)
	s.search.EXPECT().Search(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewStoreError("scan", "dishes", errors.New("connection refused")))

	rec := s.do(http.MethodGet, "/api/v1/search?category=restaurants", "", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
	assert.JSONEq(t, `{"retryable":true,"operation":"scan dishes"}`, string(body.Error.Details))
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSearch_InvalidCategory(t *testing.T) {
	s := newTestServer(t)
	s.search.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCategory)

	rec := s.do(http.MethodGet, "/api/v1/search?category=dogs", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CATEGORY", decodeError(t, rec).Error.Code)
}

func TestRestaurantDetail_DecodesName(t *testing.T) {
	s := newTestServer(t)
	s.search.EXPECT().RestaurantDetail(mock.Anything, "Sushi Master").
		Return(&usecase.RestaurantDetail{
			Restaurant: entity.RestaurantResult{RestaurantAggregate: entity.RestaurantAggregate{Name: "Sushi Master"}},
			Dishes:     []*entity.Dish{},
		}, nil)

	rec := s.do(http.MethodGet, "/api/v1/restaurants/Sushi%20Master", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Sushi Master"`)
}

func TestRestaurantQR_ServesPNG(t *testing.T) {
	s := newTestServer(t)
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	s.follow.EXPECT().RestaurantQR(mock.Anything, "Burger Co").Return(png, nil)

	rec := s.do(http.MethodGet, "/api/v1/restaurants/Burger%20Co/qr", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestFollows_RequireAuthentication(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/v1/follows"},
		{http.MethodPost, "/api/v1/follows/toggle"},
		{http.MethodPost, "/api/v1/follows/qr"},
		{http.MethodGet, "/api/v1/preferences"},
		{http.MethodPost, "/api/v1/dishes"},
		{http.MethodGet, "/api/v1/devices"},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := s.do(tc.method, tc.target, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Error.Code)
		})
	}
}

func TestFollowToggle(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	s.authorize("good", userID)

	restaurant := "Burger Co"
	s.follow.EXPECT().ToggleFollow(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *usecase.FollowRequest) (*usecase.FollowState, error) {
			require.NotNil(t, req.RestaurantName)
			assert.Equal(t, restaurant, *req.RestaurantName)
			assert.Nil(t, req.UserID)

			return &usecase.FollowState{Target: entity.RestaurantTarget(restaurant), Following: true}, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/follows/toggle", "good", `{"restaurant_name":"Burger Co"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"following":true`)
}

func TestFollowStatus(t *testing.T) {
	s := newTestServer(t)
	target := uuid.New()

	t.Run("user target", func(t *testing.T) {
		s.authorize("good", uuid.New())
		s.follow.EXPECT().FollowStatus(mock.Anything, entity.UserTarget(target)).
			Return(&usecase.FollowState{Target: entity.UserTarget(target)}, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/follows/status?user_id="+target.String(), "good", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("both targets", func(t *testing.T) {
		s.authorize("good", uuid.New())

		rec := s.do(http.MethodGet, "/api/v1/follows/status?user_id="+target.String()+"&restaurant=Ichiran", "good", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_FOLLOW_TARGET", decodeError(t, rec).Error.Code)
	})

	t.Run("malformed user id", func(t *testing.T) {
		s.authorize("good", uuid.New())

		rec := s.do(http.MethodGet, "/api/v1/follows/status?user_id=nope", "good", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFollowByQR_RequiresPayload(t *testing.T) {
	s := newTestServer(t)
	s.authorize("good", uuid.New())

	rec := s.do(http.MethodPost, "/api/v1/follows/qr", "good", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestUnsubscribe(t *testing.T) {
	s := newTestServer(t)
	subscriptionID := uuid.New()

	t.Run("removed", func(t *testing.T) {
		s.authorize("good", uuid.New())
		s.follow.EXPECT().Unsubscribe(mock.Anything, subscriptionID).Return(nil).Once()

		rec := s.do(http.MethodDelete, "/api/v1/follows/"+subscriptionID.String(), "good", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("someone else's subscription", func(t *testing.T) {
		s.authorize("good", uuid.New())
		s.follow.EXPECT().Unsubscribe(mock.Anything, subscriptionID).Return(domainerrors.ErrForbidden).Once()

		rec := s.do(http.MethodDelete, "/api/v1/follows/"+subscriptionID.String(), "good", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, decodeError(t, rec).Error.Details)
	})
}

func TestLogDish(t *testing.T) {
	s := newTestServer(t)
	ownerID := uuid.New()

	t.Run("created", func(t *testing.T) {
		s.authorize("good", ownerID)
		s.dish.EXPECT().LogDish(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, input *usecase.DishInput) (*entity.Dish, error) {
				assert.Equal(t, "Tonkotsu", input.Name)

				return &entity.Dish{ID: uuid.New(), OwnerID: ownerID, Name: input.Name, RestaurantName: input.RestaurantName}, nil
			}).Once()

		rec := s.do(http.MethodPost, "/api/v1/dishes", "good", `{"name":"Tonkotsu","restaurant":"Ichiran","rating":5}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"restaurant":"Ichiran"`)
	})

	t.Run("rating out of range", func(t *testing.T) {
		s.authorize("good", ownerID)

		rec := s.do(http.MethodPost, "/api/v1/dishes", "good", `{"name":"Tonkotsu","rating":9}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
	})
}

func TestPreferences(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	s.authorize("good", userID)

	s.preference.EXPECT().UpdateFavoriteCuisines(mock.Anything, []string{"Thai", "ramen"}).
		Return(&entity.TastePreference{UserID: userID, FavoriteCuisines: []string{"ramen", "thai"}}, nil)

	rec := s.do(http.MethodPut, "/api/v1/preferences", "good", `{"favorite_cuisine":["Thai","ramen"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "thai")
}

func TestDevices_UseCallerIdentity(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("remove", func(t *testing.T) {
		s.authorize("good", userID)
		s.device.EXPECT().RemoveDevice(mock.Anything, userID, deviceID).Return(nil).Once()

		rec := s.do(http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "good", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		s.authorize("good", userID)
		s.device.EXPECT().UpdateFCMToken(mock.Anything, userID, deviceID, "new-token").
			Return(domainerrors.ErrDeviceNotFound).Once()

		rec := s.do(http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", "good", `{"fcm_token":"new-token"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rotate token", func(t *testing.T) {
		s.authorize("good", userID)
		s.device.EXPECT().UpdateFCMToken(mock.Anything, userID, deviceID, "rotated").Return(nil).Once()

		rec := s.do(http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", "good", `{"fcm_token":"rotated"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		s.authorize("good", userID)

		rec := s.do(http.MethodDelete, "/api/v1/devices/42", "good", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
	})

	t.Run("list", func(t *testing.T) {
		s.authorize("good", userID)
		s.device.EXPECT().GetUserDevices(mock.Anything, userID).Return(nil, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/devices", "good", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
		assert.Contains(t, rec.Body.String(), `"count":0`)
	})
}
