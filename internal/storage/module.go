// Package storage selects and wires the configured persistence backend.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/config"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
	"github.com/polkiloo/ordertrack/internal/storage/postgres"
	"github.com/polkiloo/ordertrack/internal/storage/sqlite"
)

// Module wires the store and repository adapters.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(s repository.Store) repository.ClientRepository { return s.Clients() },
		func(s repository.Store) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (repository.Store, error) {
	store, err := Open(p.Ctx, p.Config.StorageDriver, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	if p.Config.ResetOnStart {
		if err := store.Initialize(p.Ctx); err != nil {
			store.Close()
			return nil, err
		}
	}
	return store, nil
}

// Open connects to the backend named by driver.
func Open(ctx context.Context, driver, dsn string, logger *slog.Logger) (repository.Store, error) {
	switch driver {
	case config.DriverSQLite:
		store, err := sqlite.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverPostgres:
		store, err := postgres.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func registerLifecycle(lc fx.Lifecycle, store repository.Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})
}
