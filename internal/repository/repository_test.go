package repository

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rewear-app/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "repo_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Brand{},
		&models.Item{},
		&models.Purchase{},
		&models.Listing{},
		&models.Sale{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, tag string) models.User {
	t.Helper()
	u := models.User{Email: tag + "@example.com", Username: tag, PasswordHash: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}
