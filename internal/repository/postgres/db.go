package postgres

import (
	"context"
	"database/sql"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Schema creates the tables used by this package.
const Schema = `
CREATE TABLE IF NOT EXISTS rental_archive (
	id            UUID PRIMARY KEY,
	rental_id     TEXT NOT NULL,
	user_id       TEXT NOT NULL,
	user_name     TEXT NOT NULL,
	vehicle_id    TEXT NOT NULL,
	vehicle_kind  TEXT NOT NULL,
	vehicle_model TEXT NOT NULL,
	asset_code    TEXT,
	status        TEXT NOT NULL,
	started_at    TIMESTAMPTZ NOT NULL,
	ended_at      TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS rental_archive_vehicle_idx ON rental_archive (vehicle_id, started_at DESC);
`

// Migrate applies Schema.
func Migrate(ctx context.Context, q Querier) error {
	_, err := q.ExecContext(ctx, Schema)
	return err
}
