package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-graphql-service/internal/config"
)

func openSQLite(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestConfigurePool(t *testing.T) {
	db := openSQLite(t)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	err := configurePool(db, config.DatabaseConfig{MaxOpenConns: 7, MaxIdleConns: 2, ConnMaxLifetime: 30, ConnMaxIdleTime: 10})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
}

func TestPingDatabase(t *testing.T) {
	db := openSQLite(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, pingDatabase(ctx, db))

	require.NoError(t, CloseDatabase(db))
	err := pingDatabase(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping postgres")
}

func TestCloseDatabase_Nil(t *testing.T) {
	assert.NoError(t, CloseDatabase(nil))
}
