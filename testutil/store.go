// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/serenity-space/serenity_api/services/repositories"
)

// NewSqliteDB returns a migrated in-memory database private to t.
func NewSqliteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.Migrate(db))
	return db
}

// NewSqliteStore wraps NewSqliteDB in a Store closed at test cleanup.
func NewSqliteStore(t *testing.T) *repositories.Store {
	t.Helper()

	store := repositories.NewGormStore(NewSqliteDB(t))
	t.Cleanup(func() {
		_ = store.Close(context.Background())
	})
	return store
}
