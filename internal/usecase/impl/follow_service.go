package impl

import (
	"context"
	"log/slog"
	"strings"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/follow"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/metrics"
	"foodiecircle/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type followService struct {
	subscriptionRepo repository.SubscriptionRepository
	profileRepo      repository.ProfileRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// FollowServiceParams holds dependencies for FollowService, injected by Fx.
type FollowServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	ProfileRepo      repository.ProfileRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewFollowService creates a new follow service instance
func NewFollowService(params FollowServiceParams) usecase.FollowUsecase {
	return &followService{
		subscriptionRepo: params.SubscriptionRepo,
		profileRepo:      params.ProfileRepo,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

// newTracker gives every request its own snapshot.
func (s *followService) newTracker() *follow.Tracker {
	return follow.NewTracker(s.subscriptionRepo, s.logger)
}

// ToggleFollow resolves the request into a target and toggles it.
func (s *followService) ToggleFollow(ctx context.Context, req *usecase.FollowRequest) (*usecase.FollowState, error) {
	if _, ok := identity.FromContext(ctx); !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	target, err := s.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}

	following, err := s.newTracker().Toggle(ctx, target)
	if err != nil {
		metrics.FollowTogglesTotal.WithLabelValues(string(target.Kind), "error").Inc()

		return nil, err
	}

	result := "unfollowed"
	if following {
		result = "followed"
	}
	metrics.FollowTogglesTotal.WithLabelValues(string(target.Kind), result).Inc()

	return &usecase.FollowState{Target: target, Following: following}, nil
}

func (s *followService) resolveTarget(ctx context.Context, req *usecase.FollowRequest) (entity.FollowTarget, error) {
	if req == nil {
		return entity.FollowTarget{}, domainerrors.ErrInvalidFollowTarget
	}

	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		if req.UserID != nil || req.RestaurantName != nil {
			return entity.FollowTarget{}, domainerrors.ErrInvalidFollowTarget
		}

		userID, err := s.lookupUsername(ctx, strings.TrimSpace(*req.Username))
		if err != nil {
			return entity.FollowTarget{}, err
		}

		return entity.UserTarget(userID), nil
	}

	target, err := entity.NewFollowTarget(req.UserID, req.RestaurantName)
	if err != nil {
		return entity.FollowTarget{}, domainerrors.ErrInvalidFollowTarget
	}

	return target, nil
}

func (s *followService) lookupUsername(ctx context.Context, username string) (uuid.UUID, error) {
	profiles, err := s.profileRepo.ScanProfiles(ctx,
		repository.Where(repository.Eq(repository.FieldUsername, username)), 1)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to look up username")
	}
	if len(profiles) == 0 {
		return uuid.Nil, domainerrors.ErrProfileNotFound.WithDetails(username)
	}

	return profiles[0].ID, nil
}

// FollowStatus refreshes the caller's snapshot and checks target.
func (s *followService) FollowStatus(ctx context.Context, target entity.FollowTarget) (*usecase.FollowState, error) {
	if err := target.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidFollowTarget
	}

	tracker := s.newTracker()
	if err := tracker.Refresh(ctx); err != nil {
		return nil, err
	}

	return &usecase.FollowState{Target: target, Following: tracker.IsFollowing(target)}, nil
}

// ListSubscriptions returns the caller's subscriptions
func (s *followService) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	tracker := s.newTracker()
	if err := tracker.Refresh(ctx); err != nil {
		return nil, err
	}

	return tracker.Snapshot().Subscriptions, nil
}

// Unsubscribe deletes a subscription after checking the caller owns it.
func (s *followService) Unsubscribe(ctx context.Context, subscriptionID uuid.UUID) error {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to find subscription")
	}

	if sub.SubscriberID != userID {
		return domainerrors.ErrForbidden.WithDetails("subscription belongs to another user")
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, subscriptionID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to delete subscription")
	}

	s.logger.DebugContext(ctx, "Unsubscribed", slog.String("subscription_id", subscriptionID.String()))

	return nil
}

// FollowByQR follows the restaurant in a scanned payload without toggling an existing follow.
func (s *followService) FollowByQR(ctx context.Context, qrData string) (*usecase.FollowState, error) {
	if _, ok := identity.FromContext(ctx); !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	name, err := s.qrcodeService.ParseRestaurantQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}
	target := entity.RestaurantTarget(name)

	tracker := s.newTracker()
	if err := tracker.Refresh(ctx); err != nil {
		return nil, err
	}
	if tracker.IsFollowing(target) {
		return &usecase.FollowState{Target: target, Following: true}, nil
	}

	following, err := tracker.Toggle(ctx, target)
	if err != nil {
		metrics.FollowTogglesTotal.WithLabelValues(string(target.Kind), "error").Inc()

		return nil, err
	}
	metrics.FollowTogglesTotal.WithLabelValues(string(target.Kind), "followed").Inc()

	return &usecase.FollowState{Target: target, Following: following}, nil
}

// RestaurantQR renders the follow QR code for a restaurant
func (s *followService) RestaurantQR(_ context.Context, restaurantName string) ([]byte, error) {
	png, err := s.qrcodeService.GenerateRestaurantQR(strings.TrimSpace(restaurantName))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return png, nil
}
