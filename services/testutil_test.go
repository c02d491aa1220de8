package services

import (
	"path/filepath"
	"testing"

	"carelog-http-service/config"
	"carelog-http-service/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 在临时目录里建一个sqlite测试库，外键约束开启
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Staff{},
		&models.Resident{},
		&models.CareRecord{},
		&models.HandoverItem{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:   "test-secret",
		SessionTTLDays: 30,
		QRBaseURL:      "http://localhost:8080",
	}
}

// mustCreateResident 创建一个测试入住者
func mustCreateResident(t *testing.T, db *gorm.DB, name string) *models.Resident {
	t.Helper()
	resident := &models.Resident{Name: name}
	require.NoError(t, db.Create(resident).Error)
	return resident
}
