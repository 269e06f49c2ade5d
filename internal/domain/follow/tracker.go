package follow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"

	"github.com/google/uuid"
)

// Tracker owns one caller's subscription snapshot.
//
// Toggle is a read-then-write against the loaded snapshot and is not atomic in
// the store: two sessions toggling the same target concurrently may leave zero
// or two records. Both states converge on the next Refresh.
type Tracker struct {
	repo   repository.SubscriptionRepository
	logger *slog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot
	loaded   bool
}

// NewTracker creates an empty tracker. Call Refresh before IsFollowing.
func NewTracker(repo repository.SubscriptionRepository, logger *slog.Logger) *Tracker {
	return &Tracker{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Refresh replaces the snapshot with a full re-scan of the caller's subscriptions.
func (t *Tracker) Refresh(ctx context.Context) error {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return t.load(ctx, userID)
}

func (t *Tracker) load(ctx context.Context, userID uuid.UUID) error {
	subs, err := t.repo.ScanSubscriptions(ctx, repository.Where(repository.Eq(repository.FieldUserID, userID)), 0)
	if err != nil {
		return errors.Wrap(err, "failed to load subscriptions")
	}

	t.mu.Lock()
	t.snapshot = Snapshot{SubscriberID: userID, Subscriptions: subs}
	t.loaded = true
	t.mu.Unlock()

	return nil
}

// Snapshot returns the currently loaded view.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.snapshot
}

// IsFollowing answers from the loaded snapshot; false when nothing is loaded.
func (t *Tracker) IsFollowing(target entity.FollowTarget) bool {
	return t.Snapshot().IsFollowing(target)
}

// Toggle follows target when it is not followed and unfollows it otherwise.
// It returns the follow state after the write. Only the first matching record
// is removed per call when duplicates exist.
func (t *Tracker) Toggle(ctx context.Context, target entity.FollowTarget) (bool, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return false, domainerrors.ErrUnauthenticated
	}
	if err := target.Validate(); err != nil {
		return false, domainerrors.ErrInvalidFollowTarget.WithDetails(err.Error())
	}
	if target.Kind == entity.TargetUser && target.UserID == userID {
		return false, domainerrors.ErrInvalidFollowTarget.WithDetails("cannot follow yourself")
	}

	t.mu.RLock()
	stale := !t.loaded || t.snapshot.SubscriberID != userID
	t.mu.RUnlock()
	if stale {
		if err := t.load(ctx, userID); err != nil {
			return false, err
		}
	}

	if existing := t.Snapshot().Find(target); existing != nil {
		if err := t.repo.DeleteSubscription(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return true, errors.Wrap(err, "failed to delete subscription")
		}

		t.mu.Lock()
		t.snapshot = t.snapshot.without(existing.ID)
		t.mu.Unlock()

		t.logger.DebugContext(ctx, "Unfollowed", slog.String("target", target.String()))

		return t.IsFollowing(target), nil
	}

	sub := &entity.Subscription{
		ID:           uuid.New(),
		SubscriberID: userID,
		Target:       target,
		CreatedAt:    t.now(),
	}
	if err := t.repo.CreateSubscription(ctx, sub); err != nil {
		return false, errors.Wrap(err, "failed to create subscription")
	}

	t.mu.Lock()
	t.snapshot = t.snapshot.with(sub)
	t.mu.Unlock()

	t.logger.DebugContext(ctx, "Followed", slog.String("target", target.String()))

	return true, nil
}
