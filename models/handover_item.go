package models

import (
	"time"
)

// 班次常量，shift字段允许自由文本，这里只是约定值
const (
	ShiftDay     = "day"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)

// 优先级约定: 1=高, 2=中, 3=低
const (
	PriorityHigh   = 1
	PriorityMiddle = 2
	PriorityLow    = 3
)

// HandoverItem 表示交接板上的一条交接事项
type HandoverItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OnDate     string `gorm:"type:varchar(10);not null;index" json:"on_date"` // 'YYYY-MM-DD'
	Shift      string `gorm:"type:varchar(20);not null;index" json:"shift"`
	ResidentID *uint  `gorm:"index" json:"resident_id"` // 可以不关联入住者
	Priority   int    `gorm:"not null;default:2" json:"priority"`
	Title      string `gorm:"type:varchar(100)" json:"title"`
	Body       string `gorm:"type:text" json:"body"`
	// 与护理记录一样，作者姓名为冗余字段
	StaffName string    `gorm:"type:varchar(50)" json:"staff_name"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	// 入住者删除后交接事项保留，仅解除关联
	Resident *Resident `gorm:"foreignKey:ResidentID;constraint:OnDelete:SET NULL" json:"resident,omitempty"`
}

// HandoverRow 是交接列表的查询结果，入住者姓名可为空
type HandoverRow struct {
	ID           uint      `json:"id"`
	OnDate       string    `json:"on_date"`
	Shift        string    `json:"shift"`
	ResidentID   *uint     `json:"resident_id"`
	ResidentName *string   `json:"resident_name"`
	Priority     int       `json:"priority"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	StaffName    string    `json:"staff_name"`
	CreatedAt    time.Time `json:"created_at"`
}
