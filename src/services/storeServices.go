package services

import (
	"context"
	"fmt"

	"github.com/kedeea/kedeea-consent-api/src/config"
	"github.com/kedeea/kedeea-consent-api/src/db"
)

// NewConsentStore connects to the configured engine, bootstraps the schema and returns the matching store.
func NewConsentStore(ctx context.Context, cfg config.Config) (ConsentStore, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		gormDB, err := db.GormFromPool(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if err := db.Migrate(gormDB); err != nil {
			pool.Close()
			return nil, err
		}
		return NewPostgresConsentService(pool), nil

	case config.DriverSQLite:
		gormDB, err := db.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store := NewSQLiteConsentService(gormDB)
		if err := db.Migrate(gormDB); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}
