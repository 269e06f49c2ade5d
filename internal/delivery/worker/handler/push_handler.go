package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"foodiecircle/config"
	deliverycontext "foodiecircle/internal/delivery/context"
	"foodiecircle/internal/domain/constants"
	"foodiecircle/internal/domain/entity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// retryableError marks a failure that should trigger a Pub/Sub redelivery
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func (e *retryableError) Retryable() bool {
	return true
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// PushHandler fans a logged dish out to the author's and the restaurant's followers.
type PushHandler struct {
	authenticate     func(*http.Request) error
	logger           *slog.Logger
	notificationSvc  service.NotificationService
	subscriptionRepo repository.SubscriptionRepository
	profileRepo      repository.ProfileRepository
	deviceRepo       repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	NotificationSvc  service.NotificationService `optional:"true"`
	SubscriptionRepo repository.SubscriptionRepository
	ProfileRepo      repository.ProfileRepository
	DeviceRepo       repository.DeviceRepository
}

// NewPushHandler verifies push tokens only when events come from Google
// Pub/Sub outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:           params.Logger,
		notificationSvc:  params.NotificationSvc,
		subscriptionRepo: params.SubscriptionRepo,
		profileRepo:      params.ProfileRepo,
		deviceRepo:       params.DeviceRepo,
	}

	cfg := params.Config
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop {
		h.authenticate = verifyPubSubToken
	}

	return h
}

// HandlePush answers 400 for bodies that can never be processed, 503 when
// a redelivery may succeed and 200 otherwise, including for events that were
// dropped.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.authenticate != nil {
		if err := h.authenticate(req); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodeDishEvent(req.Body)
	if err != nil {
		h.logger.Error("[Worker] Rejecting push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	id := requestID(req.Context(), msg, event)
	logger := h.logger.With(slog.String("request_id", id))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), id), logger)

	logger.Info("[Worker] Processing dish event",
		slog.String("message_id", msg.Message.MessageID),
		slog.String("dish_id", event.DishID),
		slog.String("author_id", event.AuthorID),
		slog.String("restaurant", event.RestaurantName),
	)

	err = h.processEvent(ctx, event)
	if err != nil {
		logger.Error("[Worker] Failed to process dish event",
			slog.String("dish_id", event.DishID),
			slog.Any("error", err),
			slog.Bool("retryable", errors.IsRetryable(err)),
		)
	}

	return c.NoContent(ackStatus(err))
}

func ackStatus(err error) int {
	if err != nil && errors.IsRetryable(err) {
		return http.StatusServiceUnavailable
	}

	return http.StatusOK
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.DishLoggedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	authorID, err := uuid.Parse(event.AuthorID)
	if err != nil {
		return errors.Wrap(err, "parse author id")
	}

	if h.notificationSvc == nil {
		logger.Warn("[Worker] Push notifications disabled, dropping event", slog.String("dish_id", event.DishID))

		return nil
	}

	followers, err := h.resolveFollowers(ctx, authorID, strings.TrimSpace(event.RestaurantName))
	if err != nil {
		return newRetryableError(err)
	}
	if len(followers) == 0 {
		logger.Info("[Worker] No followers to notify", slog.String("dish_id", event.DishID))

		return nil
	}

	devices, err := h.deviceRepo.FindDevicesForUsers(ctx, followers)
	if err != nil {
		return newRetryableError(err)
	}
	if len(devices) == 0 {
		logger.Info("[Worker] No devices found for followers",
			slog.String("dish_id", event.DishID),
			slog.Int("follower_count", len(followers)),
		)

		return nil
	}

	msg := h.dishMessage(ctx, event, authorID)
	total := h.sendBatched(ctx, collectTokens(devices), msg)

	if len(total.InvalidTokens) > 0 {
		if err := h.deviceRepo.DeleteDevicesByTokens(ctx, total.InvalidTokens); err != nil {
			logger.Warn("[Worker] Failed to delete invalid devices",
				slog.Int("invalid_tokens", len(total.InvalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("[Worker] Dish notification sending completed",
		slog.String("dish_id", event.DishID),
		slog.Int("followers", len(followers)),
		slog.Int("total_sent", total.Sent),
		slog.Int("total_failed", total.Failed),
		slog.Int("invalid_tokens", len(total.InvalidTokens)),
	)

	return nil
}

// resolveFollowers returns the distinct users following the author or the
// restaurant, excluding the author.
func (h *PushHandler) resolveFollowers(ctx context.Context, authorID uuid.UUID, restaurant string) ([]uuid.UUID, error) {
	preds := []repository.Predicate{
		repository.Where(repository.Eq(repository.FieldSubscribedToUser, authorID)),
	}
	if restaurant != "" {
		preds = append(preds, repository.Where(repository.Eq(repository.FieldSubscribedToRestaurant, restaurant)))
	}

	seen := map[uuid.UUID]struct{}{authorID: {}}
	var followers []uuid.UUID
	for _, pred := range preds {
		subs, err := h.subscriptionRepo.ScanSubscriptions(ctx, pred, 0)
		if err != nil {
			return nil, err
		}
		for _, sub := range subs {
			if _, dup := seen[sub.SubscriberID]; dup {
				continue
			}
			seen[sub.SubscriberID] = struct{}{}
			followers = append(followers, sub.SubscriberID)
		}
	}

	return followers, nil
}

func collectTokens(devices []*entity.UserDevice) []string {
	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		if _, dup := seen[device.FCMToken]; dup {
			continue
		}
		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

func (h *PushHandler) dishMessage(ctx context.Context, event *service.DishLoggedEvent, authorID uuid.UUID) service.PushMessage {
	msg := service.PushMessage{
		Title: h.authorName(ctx, authorID) + " logged a dish",
		Body:  event.DishName,
		Data: map[string]string{
			"type":      "dish_logged",
			"dish_id":   event.DishID,
			"author_id": event.AuthorID,
		},
	}
	if event.RestaurantName != "" {
		msg.Body = fmt.Sprintf("%s at %s", event.DishName, event.RestaurantName)
		msg.Data["restaurant"] = event.RestaurantName
	}
	if event.Place != "" {
		msg.Body = fmt.Sprintf("%s, %s", msg.Body, event.Place)
	}

	return msg
}

// authorName falls back to a generic label when the profile cannot be read.
func (h *PushHandler) authorName(ctx context.Context, authorID uuid.UUID) string {
	const fallback = "Someone you follow"

	profiles, err := h.profileRepo.ScanProfiles(ctx, repository.Where(repository.Eq(repository.FieldID, authorID)), 1)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to load author profile",
			slog.String("author_id", authorID.String()),
			slog.Any("error", err),
		)

		return fallback
	}
	if len(profiles) == 0 || profiles[0].Username == "" {
		return fallback
	}

	return profiles[0].Username
}

// sendBatched splits tokens into provider-sized batches. A failed batch counts
// every token as failed and does not stop the remaining batches.
func (h *PushHandler) sendBatched(ctx context.Context, tokens []string, msg service.PushMessage) service.BatchResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var total service.BatchResult
	for batch := range slices.Chunk(tokens, service.MaxBatchTokens) {
		result, err := h.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			total.Failed += len(batch)
			metrics.PushNotificationsTotal.WithLabelValues("error").Add(float64(len(batch)))

			continue
		}

		total.Sent += result.Sent
		total.Failed += result.Failed
		total.InvalidTokens = append(total.InvalidTokens, result.InvalidTokens...)
		metrics.PushNotificationsTotal.WithLabelValues("sent").Add(float64(result.Sent))
		metrics.PushNotificationsTotal.WithLabelValues("failed").Add(float64(result.Failed))
	}

	return total
}
