package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// newMockBookingRepository creates a GormBookingRepository with a mocked SQL connection
func newMockBookingRepository(t *testing.T) (*GormBookingRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormBookingRepository(gormDB), mock, mockDB
}

func TestGormBookingRepository_FindByID(t *testing.T) {
	t.Run("finds existing booking", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		bookingID := uuid.New()
		guestID := uuid.New()
		roomID := uuid.New()
		checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{
			"id", "version", "booking_number", "guest_id", "room_id",
			"check_in_date", "check_out_date", "room_rate", "total_amount",
			"status", "payment_status",
		}).AddRow(
			bookingID, 1, "BK-20260310-0004", guestID, roomID,
			checkIn, checkIn.AddDate(0, 0, 3), decimal.NewFromInt(80),
			decimal.NewFromInt(240), "confirmed", "pending",
		)

		mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(bookingID, 1).
			WillReturnRows(rows)

		b, err := repo.FindByID(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.Equal(t, bookingID, b.ID)
		assert.Equal(t, "BK-20260310-0004", b.BookingNumber)
		assert.Equal(t, booking.BookingStatusConfirmed, b.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing booking", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		bookingID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(bookingID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		b, err := repo.FindByID(context.Background(), bookingID)

		assert.Error(t, err)
		assert.Nil(t, b)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingRepository_CountConflicting(t *testing.T) {
	t.Run("counts confirmed and active overlaps only", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		roomID := uuid.New()
		excludeID := uuid.New()
		checkIn := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		checkOut := checkIn.AddDate(0, 0, 2)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE room_id = \$1 AND status IN \(\$2,\$3\) AND \(check_in_date < \$4 AND check_out_date > \$5\) AND id <> \$6`).
			WithArgs(roomID, "confirmed", "active", checkOut, checkIn, excludeID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountConflicting(context.Background(), roomID, checkIn, checkOut, excludeID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports zero when the room is free", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		roomID := uuid.New()
		checkIn := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountConflicting(context.Background(), roomID, checkIn, checkIn.AddDate(0, 0, 1), uuid.Nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingRepository_Delete(t *testing.T) {
	t.Run("removes booking and its payments", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRepository(t)
		defer mockDB.Close()

		bookingID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "booking_payments" WHERE booking_id = \$1`).
			WithArgs(bookingID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "bookings" WHERE id = \$1`).
			WithArgs(bookingID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), bookingID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
