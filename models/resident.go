package models

import (
	"time"
)

// Resident represents a care recipient tracked by the facility
type Resident struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(50);not null" json:"name"`
	Age        *int      `gorm:"check:age >= 0" json:"age"` // 年龄可以为空
	Gender     string    `gorm:"type:varchar(20)" json:"gender"`
	RoomNumber string    `gorm:"type:varchar(20)" json:"room_number"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	// 删除入住者时级联删除其护理记录
	CareRecords []CareRecord `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"care_records,omitempty"`
}
