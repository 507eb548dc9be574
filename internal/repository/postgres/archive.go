package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"zipabout/internal/domain"
	"zipabout/internal/repository"
)

var _ repository.RentalArchive = (*RentalArchive)(nil)

// RentalArchive is a PostgreSQL implementation of repository.RentalArchive.
//
// Rental ids restart at R-1 with every process, so rows are keyed by their own
// uuid and rental_id is not unique.
type RentalArchive struct {
	q Querier
}

// NewRentalArchive creates a new PostgreSQL rental archive.
func NewRentalArchive(db *sql.DB) *RentalArchive {
	return &RentalArchive{q: db}
}

// Create appends a rental record.
func (r *RentalArchive) Create(ctx context.Context, rental domain.Rental) error {
	query := `
		INSERT INTO rental_archive (id, rental_id, user_id, user_name, vehicle_id, vehicle_kind, vehicle_model, asset_code, status, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var assetCode sql.NullString
	if rental.Vehicle.AssetCode != "" {
		assetCode = sql.NullString{String: rental.Vehicle.AssetCode, Valid: true}
	}

	var endedAt sql.NullTime
	if !rental.EndTime.IsZero() {
		endedAt = sql.NullTime{Time: rental.EndTime, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		uuid.New().String(),
		rental.ID,
		rental.UserID,
		rental.UserName,
		rental.VehicleID,
		string(rental.Kind),
		rental.Vehicle.Model,
		assetCode,
		string(rental.Status),
		rental.StartTime,
		endedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "archive rental %s", rental.ID)
	}
	return nil
}

// ListByVehicle retrieves archived rentals of a vehicle, newest first.
func (r *RentalArchive) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Rental, error) {
	query := `
		SELECT rental_id, user_id, user_name, vehicle_id, vehicle_kind, vehicle_model, asset_code, status, started_at, ended_at
		FROM rental_archive WHERE vehicle_id = $1 ORDER BY started_at DESC LIMIT 100
	`

	rows, err := r.q.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, errors.Wrapf(err, "list archived rentals of vehicle %s", vehicleID)
	}
	defer rows.Close()

	rentals := make([]domain.Rental, 0)
	for rows.Next() {
		var rental domain.Rental
		var kind, status string
		var assetCode sql.NullString
		var endedAt sql.NullTime
		if err := rows.Scan(
			&rental.ID,
			&rental.UserID,
			&rental.UserName,
			&rental.VehicleID,
			&kind,
			&rental.Vehicle.Model,
			&assetCode,
			&status,
			&rental.StartTime,
			&endedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan archived rental")
		}
		rental.Kind = domain.VehicleKind(kind)
		rental.Status = domain.RentalStatus(status)
		if assetCode.Valid {
			rental.Vehicle.AssetCode = assetCode.String
		}
		if endedAt.Valid {
			rental.EndTime = endedAt.Time
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}
