package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// publishAckTimeout bounds the wait for the broker ack of one dish event.
const publishAckTimeout = 10 * time.Second

// googlePubSubPublisher sends dish events to a Google Cloud Pub/Sub topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists
// before any dish is logged.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := topicName(projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "dish event topic %s is not available", topic)
	}

	logger.Info("Publishing dish events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

func topicName(projectID, topicID string) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
}

// PublishDishLogged blocks until the broker acknowledges the event.
func (p *googlePubSubPublisher) PublishDishLogged(ctx context.Context, event *service.DishLoggedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode dish event")
	}

	ackCtx, cancel := context.WithTimeout(ctx, publishAckTimeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ackCtx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ackCtx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish dish %s to %s", event.DishID, p.topic)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Dish event published",
		slog.String("dish_id", event.DishID),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
