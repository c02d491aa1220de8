package database

import (
	"path/filepath"
	"testing"

	"carelog-http-service/config"
	"carelog-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func countColumns(t *testing.T, db *gorm.DB, table, column string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Raw(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column,
	).Scan(&count).Error)
	return count
}

func TestRunMigrationsOnFreshDatabase(t *testing.T) {
	db := openTestDB(t)

	// 全新库上先跑版本化迁移再AutoMigrate，和main的启动顺序一致
	require.NoError(t, RunMigrations(db))
	require.NoError(t, AutoMigrate(db))

	var current int
	require.NoError(t, db.Model(&SchemaMigration{}).Select("COALESCE(MAX(version), 0)").Scan(&current).Error)
	assert.Equal(t, len(migrations), current)

	assert.EqualValues(t, 1, countColumns(t, db, "care_records", "staff_name"))
	assert.EqualValues(t, 1, countColumns(t, db, "handover_items", "on_date"))
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, AutoMigrate(db))
	// 再跑一遍不报错、不产生重复列、不重复记录版本
	require.NoError(t, RunMigrations(db))

	var versions int64
	require.NoError(t, db.Model(&SchemaMigration{}).Count(&versions).Error)
	assert.EqualValues(t, len(migrations), versions)
	assert.EqualValues(t, 1, countColumns(t, db, "care_records", "staff_name"))
}

func TestMigrateRenamedColumnCopiesLegacyData(t *testing.T) {
	db := openTestDB(t)

	// 模拟历史版本的库: handover_items还用旧列h_date
	require.NoError(t, db.Exec(`CREATE TABLE handover_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		h_date TEXT,
		shift TEXT,
		priority INTEGER,
		title TEXT,
		body TEXT,
		created_at DATETIME
	)`).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO handover_items (h_date, shift, priority, title) VALUES ('2024-05-01', 'day', NULL, 'legacy')",
	).Error)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, AutoMigrate(db))

	// 旧列的值搬到了新列，旧列保留
	var onDate string
	require.NoError(t, db.Raw("SELECT on_date FROM handover_items WHERE title = 'legacy'").Scan(&onDate).Error)
	assert.Equal(t, "2024-05-01", onDate)
	assert.EqualValues(t, 1, countColumns(t, db, "handover_items", "h_date"))

	// 优先级空值回填为中
	var priority int
	require.NoError(t, db.Raw("SELECT priority FROM handover_items WHERE title = 'legacy'").Scan(&priority).Error)
	assert.Equal(t, models.PriorityMiddle, priority)
}

func TestRunMigrationsBackfillsStaffRole(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Exec(`CREATE TABLE staffs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		password TEXT,
		role TEXT
	)`).Error)
	require.NoError(t, db.Exec("INSERT INTO staffs (name, role) VALUES ('佐藤', NULL)").Error)
	require.NoError(t, db.Exec("INSERT INTO staffs (name, role) VALUES ('山田', 'admin')").Error)

	require.NoError(t, RunMigrations(db))

	var role string
	require.NoError(t, db.Raw("SELECT role FROM staffs WHERE name = '佐藤'").Scan(&role).Error)
	assert.Equal(t, models.RoleCaregiver, role)
	require.NoError(t, db.Raw("SELECT role FROM staffs WHERE name = '山田'").Scan(&role).Error)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestAddColumnIfMissing(t *testing.T) {
	db := openTestDB(t)

	// 表不存在时跳过
	require.NoError(t, AddColumnIfMissing(db, "no_such_table", "x", "TEXT"))

	require.NoError(t, db.Exec("CREATE TABLE sample (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, AddColumnIfMissing(db, "sample", "note", "TEXT"))
	require.NoError(t, AddColumnIfMissing(db, "sample", "note", "TEXT"))
	assert.EqualValues(t, 1, countColumns(t, db, "sample", "note"))
}

func TestEnsureAdminExists(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	cfg := &config.Config{DefaultAdminName: "admin", DefaultAdminPassword: "admin123"}
	EnsureAdminExists(db, cfg)

	var admin models.Staff
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin", admin.Name)
	assert.True(t, models.CheckPasswordHash("admin123", admin.Password))

	// 已有管理员时不重复创建
	EnsureAdminExists(db, cfg)
	var count int64
	require.NoError(t, db.Model(&models.Staff{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureAdminExistsSkipsOnStorageError(t *testing.T) {
	db := openTestDB(t)

	// staffs表还不存在时检查查询会失败，此时放弃引导而不是盲目创建
	cfg := &config.Config{DefaultAdminName: "admin", DefaultAdminPassword: "admin123"}
	EnsureAdminExists(db, cfg)

	require.NoError(t, AutoMigrate(db))
	var count int64
	require.NoError(t, db.Model(&models.Staff{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnsureAdminPromotesExistingStaff(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, AutoMigrate(db))

	staff := models.Staff{Name: "山田", Password: "Pass@123", Role: models.RoleCaregiver}
	require.NoError(t, db.Create(&staff).Error)

	cfg := &config.Config{DefaultAdminName: "山田", DefaultAdminPassword: "unused"}
	EnsureAdminExists(db, cfg)

	var got models.Staff
	require.NoError(t, db.First(&got, staff.ID).Error)
	assert.Equal(t, models.RoleAdmin, got.Role)
	// 原密码保留
	assert.True(t, models.CheckPasswordHash("Pass@123", got.Password))
}
