// Package persistence selects the record store backing the repositories.
package persistence

import (
	"log/slog"

	"foodiecircle/config"
	"foodiecircle/internal/domain/repository"
	"foodiecircle/internal/errors"
	"foodiecircle/internal/infra/persistence/memory"
	"foodiecircle/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the dependencies of the store selection.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes one repository per collection to the fx graph.
type Repositories struct {
	fx.Out

	Dishes           repository.DishRepository
	Subscriptions    repository.SubscriptionRepository
	TastePreferences repository.TastePreferenceRepository
	Profiles         repository.ProfileRepository
	Devices          repository.DeviceRepository
}

// New builds the repositories for the configured store driver.
func New(params Params) (Repositories, error) {
	driver := config.StoreDriverPostgres
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	switch driver {
	case config.StoreDriverMemory:
		params.Logger.Warn("Using in-memory record store, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Dishes:           store.Dishes(),
			Subscriptions:    store.Subscriptions(),
			TastePreferences: store.TastePreferences(),
			Profiles:         store.Profiles(),
			Devices:          store.Devices(),
		}, nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Dishes:           postgres.NewDishRepository(db),
			Subscriptions:    postgres.NewSubscriptionRepository(db),
			TastePreferences: postgres.NewTastePreferenceRepository(db),
			Profiles:         postgres.NewProfileRepository(db),
			Devices:          postgres.NewDeviceRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the repositories FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
