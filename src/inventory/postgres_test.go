package inventory

import (
	"context"
	"os"
	"testing"

	"travelbook/src/models"
	"travelbook/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newPostgresDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(20)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Flight{}, &models.Bus{}))
	return db
}

func TestPostgresConcurrentReserveNeverOversells(t *testing.T) {
	db := newPostgresDB(t)
	store := NewSQLStore(db)
	flight := models.Flight{FlightNumber: "AI-202", SeatsAvailable: 5}
	require.NoError(t, db.Create(&flight).Error)
	t.Cleanup(func() { db.Unscoped().Delete(&flight) })

	granted := reserveConcurrently(t, store, types.KIND_FLIGHT, flight.ID, 40)
	assert.Equal(t, int64(5), granted)

	left, err := store.Available(context.Background(), types.KIND_FLIGHT, flight.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, left)
}
