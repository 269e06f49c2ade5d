// Package notification sends follower push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"foodiecircle/config"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastSender is the part of *messaging.Client the service uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates a Firebase notification service from configuration.
// Without Firebase configuration pushes are logged and dropped.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, follower pushes are disabled")

		return &noopNotificationService{logger: logger}, nil
	}

	var appCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendBatch sends msg to at most service.MaxBatchTokens device tokens in one
// multicast call.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (service.BatchResult, error) {
	switch {
	case len(tokens) == 0:
		return service.BatchResult{}, nil
	case len(tokens) > service.MaxBatchTokens:
		return service.BatchResult{}, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxBatchTokens)
	}

	resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	})
	if err != nil {
		return service.BatchResult{}, errors.Wrap(err, "failed to send multicast notification")
	}

	return service.BatchResult{
		Sent:          resp.SuccessCount,
		Failed:        resp.FailureCount,
		InvalidTokens: rejectedTokens(tokens, resp.Responses),
	}, nil
}

// rejectedTokens pairs per-token responses with their tokens by index and
// keeps the ones the provider will never accept again.
func rejectedTokens(tokens []string, responses []*messaging.SendResponse) []string {
	var rejected []string
	for i, r := range responses {
		if i >= len(tokens) || r == nil || r.Error == nil {
			continue
		}
		if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
			rejected = append(rejected, tokens[i])
		}
	}

	return rejected
}

type noopNotificationService struct {
	logger *slog.Logger
}

func (s *noopNotificationService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (service.BatchResult, error) {
	s.logger.DebugContext(ctx, "Push disabled, dropping notification",
		slog.String("title", msg.Title),
		slog.Int("token_count", len(tokens)),
	)

	return service.BatchResult{}, nil
}
