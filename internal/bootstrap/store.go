// Package bootstrap wires infrastructure shared by the server and the CLI.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/okrsearch/internal/config"
	"github.com/kailas-cloud/okrsearch/internal/db"
	dbRedis "github.com/kailas-cloud/okrsearch/internal/db/redis"
	"github.com/kailas-cloud/okrsearch/internal/db/sqlstore"
)

// OpenStore creates the entity store for the configured driver, waits for it
// and, for SQL drivers, applies migrations.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig) (db.Store, error) {
	readiness := time.Duration(cfg.ReadinessTimeout) * time.Second

	switch cfg.Driver {
	case config.DriverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, err
		}
		if err := s.WaitForReady(ctx, readiness); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil

	case config.DriverPostgres, config.DriverSQLite:
		s, err := sqlstore.Open(sqlstore.Config{
			Dialect:      sqlstore.Dialect(cfg.Driver),
			DSN:          cfg.DSN,
			MaxOpenConns: cfg.MaxOpenConns,
		})
		if err != nil {
			return nil, err
		}
		if err := s.WaitForReady(ctx, readiness); err != nil {
			s.Close()
			return nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
