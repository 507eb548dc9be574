package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/lib/pq"
	_ "github.com/newrelic/go-agent/v3/integrations/nrpq" // Registers "nrpostgres" driver
	"github.com/newrelic/go-agent/v3/newrelic"

	"zipabout/internal/config"
	"zipabout/internal/repository/postgres"
)

// NewDatabase opens the rental archive database and applies its schema.
// If nrApp is provided, it uses the New Relic instrumented driver for SQL tracing.
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig, nrApp *newrelic.Application) (*sql.DB, error) {
	driver := "postgres"
	// The "nrpostgres" driver is registered by the nrpq import.
	if nrApp != nil {
		driver = "nrpostgres"
	}

	db, err := sql.Open(driver, cfg.DSN())
	if err != nil {
		return nil, errors.Wrapf(err, "open database with %s", driver)
	}

	// The archive sees one insert per completed rental; a small pool is plenty.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Rotate connections ahead of proxy and failover timeouts.
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrate rental archive")
	}

	return db, nil
}
