package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SchemaMigration 记录已应用的迁移版本
type SchemaMigration struct {
	Version   int    `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100)"`
	AppliedAt time.Time
}

// migration 是一个带版本号的迁移步骤，步骤本身必须幂等
type migration struct {
	Version int
	Name    string
	Run     func(tx *gorm.DB) error
}

// 迁移按版本号顺序执行，只追加新版本，不修改已发布的步骤
var migrations = []migration{
	{
		Version: 1,
		Name:    "care_records 补充 staff_name 列",
		Run: func(tx *gorm.DB) error {
			return AddColumnIfMissing(tx, "care_records", "staff_name", "varchar(50)")
		},
	},
	{
		Version: 2,
		Name:    "staff 角色空值回填为 caregiver",
		Run: func(tx *gorm.DB) error {
			exists, err := TableExists(tx, "staffs")
			if err != nil || !exists {
				return err
			}
			return tx.Exec("UPDATE staffs SET role = 'caregiver' WHERE role IS NULL OR role = ''").Error
		},
	},
	{
		Version: 3,
		Name:    "handover_items 旧列 h_date 拷贝到 on_date",
		Run: func(tx *gorm.DB) error {
			return MigrateRenamedColumn(tx, "handover_items", "h_date", "on_date")
		},
	},
	{
		Version: 4,
		Name:    "handover_items 优先级空值回填为中",
		Run: func(tx *gorm.DB) error {
			exists, err := TableExists(tx, "handover_items")
			if err != nil || !exists {
				return err
			}
			return tx.Exec("UPDATE handover_items SET priority = 2 WHERE priority IS NULL").Error
		},
	},
}

// RunMigrations 按顺序应用所有未执行的迁移，每个步骤单独在一个事务中执行。
// 重复调用不会产生重复列或重复数据（幂等）。
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var current int
	if err := db.Model(&SchemaMigration{}).Select("COALESCE(MAX(version), 0)").Scan(&current).Error; err != nil {
		return fmt.Errorf("failed to read current schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			// DDL失败没有可恢复的中间状态，由调用方决定终止进程
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
	}

	return nil
}

// TableExists 检查表是否存在
func TableExists(tx *gorm.DB, table string) (bool, error) {
	var count int64
	err := tx.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ColumnExists 检查表中某一列是否存在
func ColumnExists(tx *gorm.DB, table, column string) (bool, error) {
	var count int64
	err := tx.Raw("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddColumnIfMissing 列不存在时添加，表不存在时跳过（表交给AutoMigrate创建）
func AddColumnIfMissing(tx *gorm.DB, table, column, columnType string) error {
	tableExists, err := TableExists(tx, table)
	if err != nil || !tableExists {
		return err
	}
	exists, err := ColumnExists(tx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return tx.Exec(fmt.Sprintf("ALTER TABLE `%s` ADD COLUMN `%s` %s", table, column, columnType)).Error
}

// MigrateRenamedColumn 处理历史版本中改过名的列：旧列存在而新列不存在时，
// 添加新列并把旧列的值整体拷贝过去。旧列保留不删。
func MigrateRenamedColumn(tx *gorm.DB, table, oldColumn, newColumn string) error {
	oldExists, err := ColumnExists(tx, table, oldColumn)
	if err != nil {
		return err
	}
	newExists, err := ColumnExists(tx, table, newColumn)
	if err != nil {
		return err
	}
	if !oldExists || newExists {
		return nil
	}

	if err := tx.Exec(fmt.Sprintf("ALTER TABLE `%s` ADD COLUMN `%s` TEXT", table, newColumn)).Error; err != nil {
		return err
	}
	return tx.Exec(fmt.Sprintf("UPDATE `%s` SET `%s` = `%s`", table, newColumn, oldColumn)).Error
}
