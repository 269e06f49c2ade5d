// Package memory is an in-process record store with the same scan semantics
// as the PostgreSQL store. It backs the "memory" store driver and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"foodiecircle/internal/domain/entity"
	domainerrors "foodiecircle/internal/domain/errors"
	"foodiecircle/internal/domain/repository"

	"github.com/google/uuid"
)

// Collection names, matching the PostgreSQL tables.
const (
	CollectionDishes           = "dishes"
	CollectionSubscriptions    = "subscriptions"
	CollectionTastePreferences = "taste_preferences"
	CollectionProfiles         = "profiles"
	CollectionDevices          = "user_devices"
)

// Store holds every collection in insertion order behind one lock.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	dishes        []*entity.Dish
	subscriptions []*entity.Subscription
	preferences   []*entity.TastePreference
	profiles      []*entity.Profile
	devices       []*entity.UserDevice

	failures map[string]error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		now:      time.Now,
		failures: make(map[string]error),
	}
}

// FailCollection makes every later operation on collection fail with a StoreError
// wrapping err. A nil err clears the failure.
func (s *Store) FailCollection(collection string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		delete(s.failures, collection)

		return
	}
	s.failures[collection] = err
}

func (s *Store) check(ctx context.Context, op, collection string) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStoreError(op, collection, err)
	}
	if err, ok := s.failures[collection]; ok {
		return domainerrors.NewStoreError(op, collection, err)
	}

	return nil
}

func scan[T any](records []T, pred repository.Predicate, limit int, allowed fieldSet, field fieldFunc[T], clone func(T) T) ([]T, error) {
	if err := validate(pred, allowed); err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for _, r := range records {
		ok, err := matches(r, pred, field)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, clone(r))
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func (s *Store) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}

	return t
}

// Dishes returns the dishes collection.
func (s *Store) Dishes() repository.DishRepository { return dishRepository{s} }

// Subscriptions returns the subscriptions collection.
func (s *Store) Subscriptions() repository.SubscriptionRepository { return subscriptionRepository{s} }

// TastePreferences returns the taste_preferences collection.
func (s *Store) TastePreferences() repository.TastePreferenceRepository {
	return tastePreferenceRepository{s}
}

// Profiles returns the profiles collection.
func (s *Store) Profiles() repository.ProfileRepository { return profileRepository{s} }

// Devices returns the user_devices collection.
func (s *Store) Devices() repository.DeviceRepository { return deviceRepository{s} }

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.Must(uuid.NewV7())
	}

	return id
}

func sortedUnique(values []string) []string {
	slices.Sort(values)

	return slices.Compact(values)
}
