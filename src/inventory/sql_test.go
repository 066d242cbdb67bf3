package inventory

import (
	"context"
	"testing"

	"travelbook/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return NewSQLStore(gormDB), mock
}

func TestSQLReserve(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "flights" SET "seats_available"=seats_available - \$1`).
		WithArgs(2, "f1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Reserve(context.Background(), types.KIND_FLIGHT, "f1", 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLReserveInsufficient(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "buses" SET "seats_available"=seats_available - \$1`).
		WithArgs(3, "b1", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "buses"`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := store.Reserve(context.Background(), types.KIND_BUS, "b1", 3)
	assert.ErrorIs(t, err, ErrInsufficientSeats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLReserveNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "flights"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "flights"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := store.Reserve(context.Background(), types.KIND_FLIGHT, "missing", 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLReserveInvalidQuantity(t *testing.T) {
	store, mock := newMockStore(t)

	assert.ErrorIs(t, store.Reserve(context.Background(), types.KIND_FLIGHT, "f1", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, store.Release(context.Background(), types.KIND_FLIGHT, "f1", -1), ErrInvalidQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRelease(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "flights" SET "seats_available"=seats_available \+ \$1`).
		WithArgs(2, "f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, store.Release(context.Background(), types.KIND_FLIGHT, "f1", 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAvailableNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT "seats_available" FROM "buses"`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"seats_available"}))

	_, err := store.Available(context.Background(), types.KIND_BUS, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
