package models

import (
	"time"
)

// CareRecord 表示一条护理观察记录（只增不改）
type CareRecord struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ResidentID uint   `gorm:"not null;index" json:"resident_id"`
	Meal       string `gorm:"type:varchar(100)" json:"meal"`       // 进食情况
	Medication string `gorm:"type:varchar(100)" json:"medication"` // 服药情况
	Toilet     string `gorm:"type:varchar(100)" json:"toilet"`     // 排泄情况
	Condition  string `gorm:"type:varchar(100)" json:"condition"`  // 身体状况
	Memo       string `gorm:"type:text" json:"memo"`
	// 记录人姓名为冗余字段而非外键，员工账户删除后记录归属仍然可查
	StaffName string    `gorm:"type:varchar(50)" json:"staff_name"`
	CreatedAt time.Time `json:"created_at"`
}

// CareRecordRow 是记录列表的查询结果，带入住者姓名
type CareRecordRow struct {
	ID           uint      `json:"id"`
	ResidentID   uint      `json:"resident_id"`
	ResidentName string    `json:"resident_name"`
	Meal         string    `json:"meal"`
	Medication   string    `json:"medication"`
	Toilet       string    `json:"toilet"`
	Condition    string    `json:"condition"`
	Memo         string    `json:"memo"`
	StaffName    string    `json:"staff_name"`
	CreatedAt    time.Time `json:"created_at"`
}
