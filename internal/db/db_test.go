package db

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edutech/internal/config"
	"edutech/internal/model"
)

func memoryDSN(t *testing.T) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	gormDB, err := NewSQLite(memoryDSN(t))
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB, false))

	for _, table := range Models() {
		assert.True(t, gormDB.Migrator().HasTable(table))
	}
}

func TestMigrate_ResetDropsRows(t *testing.T) {
	gormDB, err := NewSQLite(memoryDSN(t))
	require.NoError(t, err)
	require.NoError(t, Migrate(gormDB, false))

	require.NoError(t, gormDB.Create(&model.Contact{ID: model.NewID(), Name: "Ann"}).Error)

	require.NoError(t, Migrate(gormDB, true))

	var count int64
	require.NoError(t, gormDB.Model(&model.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOpen_RejectsMemoryDriver(t *testing.T) {
	_, err := Open(&config.Config{StoreDriver: config.StoreMemory})
	assert.Error(t, err)
}
