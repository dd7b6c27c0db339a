package main

import (
	"path/filepath"
	"testing"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(config.DriverSQLite, filepath.Join(t.TempDir(), "seed.db"), "error")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() { (&config.DB{SQL: db}).CloseDB() })
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedDemoIsRepeatable(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 2; i++ {
		require.NoError(t, seedDemo(db))
	}

	assert.EqualValues(t, 5, count(t, db, &models.User{}))
	assert.EqualValues(t, 5, count(t, db, &models.Tweet{}))
	assert.EqualValues(t, 5, count(t, db, &models.Follow{}))
	assert.EqualValues(t, 4, count(t, db, &models.Like{}))

	var user models.User
	require.NoError(t, db.Where("api_key = ?", "user1_api_key").First(&user).Error)
	assert.Equal(t, "Ivan Ivanov", user.Name)
}

func TestAddUser(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, addUser(db, "Jane", "jane_key"))
	err := addUser(db, "Jane again", "jane_key")
	assert.ErrorContains(t, err, "already in use")
}
