package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipabout/internal/domain"
)

func newMockArchive(t *testing.T) (*RentalArchive, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRentalArchive(db), mock
}

func TestRentalArchive_Create(t *testing.T) {
	archive, mock := newMockArchive(t)
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(20 * time.Minute)

	rental := domain.Rental{
		ID:        "R-1",
		UserID:    "alice",
		UserName:  "Alice",
		VehicleID: "ebike",
		Vehicle:   domain.VehicleDetails{Model: "FX+ 2", AssetCode: "EB-001"},
		Kind:      domain.VehicleKindEBike,
		Status:    domain.RentalStatusCompleted,
		StartTime: start,
		EndTime:   end,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO rental_archive").
			WithArgs(sqlmock.AnyArg(), "R-1", "alice", "Alice", "ebike", "E_BIKE", "FX+ 2",
				"EB-001", "COMPLETED", start, end).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, archive.Create(context.Background(), rental))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WithoutAssetCode", func(t *testing.T) {
		noCode := rental
		noCode.Vehicle.AssetCode = ""

		mock.ExpectExec("INSERT INTO rental_archive").
			WithArgs(sqlmock.AnyArg(), "R-1", "alice", "Alice", "ebike", "E_BIKE", "FX+ 2",
				nil, "COMPLETED", start, end).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, archive.Create(context.Background(), noCode))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		mock.ExpectExec("INSERT INTO rental_archive").WillReturnError(dbErr)

		err := archive.Create(context.Background(), rental)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "archive rental R-1")
	})
}

func TestRentalArchive_ListByVehicle(t *testing.T) {
	archive, mock := newMockArchive(t)
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"rental_id", "user_id", "user_name", "vehicle_id", "vehicle_kind", "vehicle_model", "asset_code", "status", "started_at", "ended_at"}).
		AddRow("R-2", "bob", "Bob", "ebike", "E_BIKE", "FX+ 2", nil, "COMPLETED", start.Add(time.Hour), start.Add(90*time.Minute)).
		AddRow("R-1", "alice", "Alice", "ebike", "E_BIKE", "FX+ 2", "EB-001", "COMPLETED", start, start.Add(20*time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM rental_archive WHERE vehicle_id = \\$1").
		WithArgs("ebike").
		WillReturnRows(rows)

	rentals, err := archive.ListByVehicle(context.Background(), "ebike")
	require.NoError(t, err)
	require.Len(t, rentals, 2)

	assert.Equal(t, "R-2", rentals[0].ID)
	assert.Equal(t, "Bob", rentals[0].UserName)
	assert.Empty(t, rentals[0].Vehicle.AssetCode)
	assert.Equal(t, domain.VehicleKindEBike, rentals[1].Kind)
	assert.Equal(t, "EB-001", rentals[1].Vehicle.AssetCode)
	assert.Equal(t, domain.RentalStatusCompleted, rentals[1].Status)
	assert.Equal(t, int64(20), rentals[1].DurationMinutes())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS rental_archive").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
