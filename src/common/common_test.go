package common

import (
	"context"
	"testing"

	"travelbook/src/booking"
	"travelbook/src/fare"
	"travelbook/src/inventory"
	"travelbook/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestBookingsGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewBookings(db).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, booking.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingsGetDecodesPassengers(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "ticket_code", "user_id", "kind", "passengers", "fare_total", "status"}).
		AddRow("b1", "123456", "u1", "bus", `[{"passenger":{"name":"Asha","gender":"female","dob":"1990-01-01"},"seat":"4"}]`, 420.0, "active")
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE ticket_code = \$1`).
		WithArgs("123456", 1).
		WillReturnRows(rows)

	b, err := NewBookings(db).FindByTicketCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, types.KIND_BUS, b.Kind)
	assert.Equal(t, []string{"4"}, b.Passengers.Seats())
	assert.Equal(t, 420.0, b.Fare.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingsTicketCodeExists(t *testing.T) {
	db, mock := newMockDB(t)
	// no deleted_at filter: soft-deleted bookings still own their code
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE ticket_code = \$1$`).
		WithArgs("654321").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewBookings(db).TicketCodeExists(context.Background(), "654321")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingsHeldSeats(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"passengers"}).
		AddRow(`[{"passenger":{"name":"A","gender":"female","dob":"1990-01-01"},"seat":"5A"},{"passenger":{"name":"B","gender":"male","dob":"1990-01-01"},"seat":"5B"}]`).
		AddRow(`[{"passenger":{"name":"C","gender":"other","dob":"1990-01-01"},"seat":"9C"}]`)
	mock.ExpectQuery(`SELECT "passengers" FROM "bookings" WHERE \(kind = \$1 AND item_id = \$2 AND status IN \(\$3,\$4\)\)`).
		WithArgs(types.KIND_FLIGHT, "fl-1", types.BOOKING_ACTIVE, types.BOOKING_CHECKED_IN).
		WillReturnRows(rows)

	seats, err := NewBookings(db).HeldSeats(context.Background(), types.KIND_FLIGHT, "fl-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"5A", "5B", "9C"}, seats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogCouponUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "coupons" WHERE code = \$1`).
		WithArgs("SAVE10", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewCatalog(db, inventory.NewSQLStore(db)).Coupon(context.Background(), " save10 ")
	assert.ErrorIs(t, err, fare.ErrInvalidCoupon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogItemNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "flights" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := NewCatalog(db, inventory.NewSQLStore(db)).Item(context.Background(), types.KIND_FLIGHT, "nope")
	assert.ErrorIs(t, err, booking.ErrItemNotFound)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogSearchBuses(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "operator", "origin", "destination", "date", "price", "gst_rate", "seats_available"}).
		AddRow("bus-1", "KSRTC", "Bangalore", "Mysore", "2026-03-15", 300.0, 5.0, 12)
	mock.ExpectQuery(`SELECT \* FROM "buses" WHERE LOWER\(origin\) = LOWER\(\$1\) AND LOWER\(destination\) = LOWER\(\$2\) AND date = \$3`).
		WithArgs("bangalore", "MYSORE", "2026-03-15").
		WillReturnRows(rows)

	buses, err := NewCatalog(db, inventory.NewSQLStore(db)).SearchBuses(context.Background(), types.SearchQuery{
		From: "bangalore", To: "MYSORE", Date: "2026-03-15",
	})
	require.NoError(t, err)
	require.Len(t, buses, 1)
	assert.Equal(t, 5.0, buses[0].GST)
	assert.Equal(t, 12, buses[0].SeatsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
