// Package factory constructs the configured store backend.
package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tonearm/tonearm/internal/config"
	storepkg "github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/store/memory"
	"github.com/tonearm/tonearm/internal/store/remote"
	"github.com/tonearm/tonearm/internal/store/seed"
	"github.com/tonearm/tonearm/internal/store/sqlstore"
)

// NewStore builds the store selected by cfg.StoreDriver. SQL-backed drivers
// have their schema applied before the store is returned.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		st := memory.New()
		if cfg.SeedDemoData {
			if err := seed.Apply(ctx, st); err != nil {
				return nil, fmt.Errorf("seed demo data: %w", err)
			}
			log.Info().Msg("memory store seeded with demo records")
		}
		return st, nil

	case config.DriverSQLite:
		db, err := sqlstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlstore.EnsureSchema(ctx, db); err != nil {
			return nil, fmt.Errorf("apply sqlite schema: %w", err)
		}
		return sqlstore.New(db, sqlstore.SQLite), nil

	case config.DriverPostgres:
		db, err := sqlstore.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := sqlstore.EnsureSchema(ctx, db); err != nil {
			return nil, fmt.Errorf("apply postgres schema: %w", err)
		}
		return sqlstore.New(db, sqlstore.Postgres), nil

	case config.DriverRemote:
		return remote.New(cfg.RemoteBaseURL, cfg.RemoteAPIKey), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}

// Pinger narrows a store to its health probe.
type Pinger interface {
	HealthPing(ctx context.Context) error
}

// StorePinger extracts the health probe from a store, unwrapping the notify
// decorator when present.
func StorePinger(st storepkg.Store) Pinger {
	type unwrapper interface{ Unwrap() storepkg.Store }
	for {
		if p, ok := st.(Pinger); ok {
			return p
		}
		u, ok := st.(unwrapper)
		if !ok {
			return nil
		}
		st = u.Unwrap()
	}
}
