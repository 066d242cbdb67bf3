package db

import (
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMockDB wires gorm's postgres dialect to a sqlmock connection.
func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	cfg := gormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func TestNewDBOverridesSingleton(t *testing.T) {
	gormDB, _ := NewMockDB()
	NewDB(gormDB)
	t.Cleanup(func() { db = nil })

	assert.Same(t, gormDB, GetDb())
	assert.Equal(t, "postgres", GetDb().Name())
}

func TestUniqueViolationIsDuplicatedKey(t *testing.T) {
	gormDB, mock := NewMockDB()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "things"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	type thing struct {
		Code string `gorm:"primaryKey"`
	}
	err := gormDB.Table("things").Create(&thing{Code: "SAVE10"}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
