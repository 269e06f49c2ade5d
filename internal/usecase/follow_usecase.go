package usecase

import (
	"context"

	"foodiecircle/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowRequest names a follow target. Exactly one field must be set.
type FollowRequest struct {
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Username       *string    `json:"username,omitempty"`
	RestaurantName *string    `json:"restaurant_name,omitempty"`
}

// FollowState is the follow relation to one target after an operation.
type FollowState struct {
	Target    entity.FollowTarget `json:"target"`
	Following bool                `json:"following"`
}

// FollowUsecase manages the caller's follow relations. The caller is taken
// from the request identity.
type FollowUsecase interface {
	// ToggleFollow follows the target when not followed and unfollows it otherwise.
	ToggleFollow(ctx context.Context, req *FollowRequest) (*FollowState, error)

	// FollowStatus reports whether the caller follows target.
	FollowStatus(ctx context.Context, target entity.FollowTarget) (*FollowState, error)

	// ListSubscriptions returns the caller's subscriptions in creation order.
	ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error)

	// Unsubscribe deletes one of the caller's subscriptions by id.
	Unsubscribe(ctx context.Context, subscriptionID uuid.UUID) error

	// FollowByQR follows the restaurant encoded in a scanned QR payload.
	// Scanning a restaurant already followed leaves it followed.
	FollowByQR(ctx context.Context, qrData string) (*FollowState, error)

	// RestaurantQR renders the follow QR code for a restaurant as PNG.
	RestaurantQR(ctx context.Context, restaurantName string) ([]byte, error)
}
