// Package service defines interfaces for domain capabilities implemented in infra.
package service

import (
	"context"
)

// DishLoggedEvent is published after a dish is logged so the feed worker can
// notify followers of the author and of the restaurant.
type DishLoggedEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	DishID         string `json:"dish_id"`
	AuthorID       string `json:"author_id"`
	DishName       string `json:"dish_name"`
	RestaurantName string `json:"restaurant,omitempty"`
	Place          string `json:"place,omitempty"`
	LoggedAt       string `json:"logged_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDishLogged publishes a dish event for async fan-out
	PublishDishLogged(ctx context.Context, event *DishLoggedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
