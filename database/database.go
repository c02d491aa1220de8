package database

import (
	"fmt"
	"log"

	"carelog-http-service/config"
	"carelog-http-service/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 唯一索引冲突翻译成gorm.ErrDuplicatedKey，服务层据此区分重名
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// sqlite是单写库，限制连接数避免SQLITE_BUSY
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrate 自动迁移所有模型（只添加新列和新表）
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Staff{},
		&models.Resident{},
		&models.CareRecord{},
		&models.HandoverItem{},
	)

	if err != nil {
		return err
	}

	return nil
}

// DropAndRecreateTables 删除并重建所有表（仅限开发环境）
func DropAndRecreateTables(db *gorm.DB) error {
	// 警告: 这将删除所有数据
	log.Println("警告: 正在删除并重建所有表，所有数据将丢失")

	tables := []string{"care_records", "handover_items", "residents", "staffs", "schema_migrations"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return AutoMigrate(db)
}

// EnsureAdminExists 确保系统中至少有一个管理员账户
func EnsureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.Staff{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("无法检查管理员账户: %v", err)
		return
	}

	if count > 0 {
		return
	}

	// 已有同名员工则直接提升为管理员，没有则新建
	var staff models.Staff
	err := db.Where("name = ?", cfg.DefaultAdminName).First(&staff).Error
	if err == nil {
		if err := db.Model(&staff).Update("role", models.RoleAdmin).Error; err != nil {
			log.Printf("无法提升默认管理员: %v", err)
		}
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("无法为默认管理员哈希密码: %v", err)
		return
	}

	admin := models.Staff{
		Name:     cfg.DefaultAdminName,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("无法创建默认管理员: %v", err)
		return
	}

	log.Printf("已创建默认管理员账户 (姓名: %s)", cfg.DefaultAdminName)
}
