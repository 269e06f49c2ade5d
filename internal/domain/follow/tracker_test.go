package follow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/follow"
	"foodiecircle/internal/domain/identity"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/infra/persistence/memory"
	mockRepo "foodiecircle/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func countRecords(t *testing.T, repo repository.SubscriptionRepository, userID uuid.UUID) int {
	t.Helper()

	subs, err := repo.ScanSubscriptions(context.Background(), repository.Where(repository.Eq(repository.FieldUserID, userID)), 0)
	require.NoError(t, err)

	return len(subs)
}

func TestTracker_ToggleTwiceIsNotFollowed(t *testing.T) {
	store := memory.NewStore()
	tracker := follow.NewTracker(store.Subscriptions(), discardLogger())

	userID := uuid.New()
	ctx := identity.WithUserID(context.Background(), userID)
	target := entity.RestaurantTarget("Sushi Master")

	followed, err := tracker.Toggle(ctx, target)
	require.NoError(t, err)
	assert.True(t, followed)
	assert.True(t, tracker.IsFollowing(target))
	assert.Equal(t, 1, countRecords(t, store.Subscriptions(), userID))

	followed, err = tracker.Toggle(ctx, target)
	require.NoError(t, err)
	assert.False(t, followed)
	assert.False(t, tracker.IsFollowing(target))
	assert.Zero(t, countRecords(t, store.Subscriptions(), userID), "follow then unfollow leaves no record")
}

func TestTracker_ToggleUserTarget(t *testing.T) {
	store := memory.NewStore()
	tracker := follow.NewTracker(store.Subscriptions(), discardLogger())

	ctx := identity.WithUserID(context.Background(), uuid.New())
	other := entity.UserTarget(uuid.New())

	followed, err := tracker.Toggle(ctx, other)
	require.NoError(t, err)
	assert.True(t, followed)

	require.NoError(t, tracker.Refresh(ctx))
	assert.True(t, tracker.IsFollowing(other))
	assert.False(t, tracker.IsFollowing(entity.RestaurantTarget("Sushi Master")))
}

func TestTracker_UnauthenticatedMakesNoStoreCall(t *testing.T) {
	repo := mockRepo.NewMockSubscriptionRepository(t)
	tracker := follow.NewTracker(repo, discardLogger())

	_, err := tracker.Toggle(context.Background(), entity.RestaurantTarget("Sushi Master"))
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	err = tracker.Refresh(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	repo.AssertNotCalled(t, "ScanSubscriptions", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
}

func TestTracker_InvalidTargets(t *testing.T) {
	repo := mockRepo.NewMockSubscriptionRepository(t)
	tracker := follow.NewTracker(repo, discardLogger())

	userID := uuid.New()
	ctx := identity.WithUserID(context.Background(), userID)

	tests := []struct {
		name   string
		target entity.FollowTarget
	}{
		{"empty restaurant", entity.RestaurantTarget("   ")},
		{"nil user", entity.UserTarget(uuid.Nil)},
		{"self", entity.UserTarget(userID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tracker.Toggle(ctx, tt.target)
			require.ErrorIs(t, err, domainerrors.ErrInvalidFollowTarget)
		})
	}
}

func TestTracker_DuplicatesRemovedOnePerCall(t *testing.T) {
	store := memory.NewStore()
	repo := store.Subscriptions()
	userID := uuid.New()
	target := entity.RestaurantTarget("Sushi Master")

	for range 2 {
		require.NoError(t, repo.CreateSubscription(context.Background(), &entity.Subscription{
			SubscriberID: userID,
			Target:       target,
		}))
	}

	tracker := follow.NewTracker(repo, discardLogger())
	ctx := identity.WithUserID(context.Background(), userID)

	followed, err := tracker.Toggle(ctx, target)
	require.NoError(t, err)
	assert.True(t, followed, "second duplicate still follows")
	assert.Equal(t, 1, countRecords(t, repo, userID))

	followed, err = tracker.Toggle(ctx, target)
	require.NoError(t, err)
	assert.False(t, followed)
	assert.Zero(t, countRecords(t, repo, userID))
}

func TestTracker_StoreErrorLeavesStateUnchanged(t *testing.T) {
	repo := mockRepo.NewMockSubscriptionRepository(t)
	tracker := follow.NewTracker(repo, discardLogger())

	userID := uuid.New()
	ctx := identity.WithUserID(context.Background(), userID)
	target := entity.RestaurantTarget("Sushi Master")
	storeErr := domainerrors.NewStoreError("insert", "subscriptions", errors.New("connection refused"))

	repo.EXPECT().
		ScanSubscriptions(ctx, mock.AnythingOfType("repository.Predicate"), 0).
		Return([]*entity.Subscription{}, nil).
		Once()
	repo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(storeErr).
		Once()

	followed, err := tracker.Toggle(ctx, target)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
	assert.False(t, followed)
	assert.False(t, tracker.IsFollowing(target))
}

func TestTracker_ReloadsForDifferentUser(t *testing.T) {
	store := memory.NewStore()
	tracker := follow.NewTracker(store.Subscriptions(), discardLogger())
	target := entity.RestaurantTarget("Sushi Master")

	alice := identity.WithUserID(context.Background(), uuid.New())
	bob := identity.WithUserID(context.Background(), uuid.New())

	_, err := tracker.Toggle(alice, target)
	require.NoError(t, err)

	followed, err := tracker.Toggle(bob, target)
	require.NoError(t, err)
	assert.True(t, followed, "bob's first toggle follows regardless of alice's snapshot")
}
