package services

import (
	"testing"

	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Project{},
		&models.Template{},
		&models.Subscription{},
		&models.BuildQueueItem{},
		&models.ActivityLog{},
		&models.PricingPlan{},
		&models.SystemLog{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role, tier string, appLimit int) *models.User {
	t.Helper()

	user := models.User{
		Email:            email,
		Password:         "x",
		Name:             "Test User",
		Role:             role,
		SubscriptionTier: tier,
		AppLimit:         appLimit,
		IsActive:         true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
