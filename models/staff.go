package models

import (
	"time"

	"gorm.io/gorm"
)

// 角色常量
const (
	RoleAdmin     = "admin"
	RoleCaregiver = "caregiver"
)

// Staff 表示护理人员账户
type Staff struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(50);unique;not null" json:"name"`
	Password   string    `gorm:"type:varchar(100)" json:"-"` // 不在JSON中暴露密码
	Role       string    `gorm:"type:varchar(20);not null;default:'caregiver'" json:"role"` // admin 或 caregiver
	LoginToken *string   `gorm:"type:varchar(64);index" json:"-"`                           // QR登录用的长期令牌，重新签发时整体替换
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if s.Password != "" && len(s.Password) < 60 {
		hashedPassword, err := HashPassword(s.Password)
		if err != nil {
			return err
		}
		s.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (s *Staff) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if s.Password != "" && len(s.Password) < 60 {
		hashedPassword, err := HashPassword(s.Password)
		if err != nil {
			return err
		}
		s.Password = hashedPassword
	}
	return nil
}
