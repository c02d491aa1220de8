package services

import (
	"errors"
	"fmt"
	"time"

	"carelog-http-service/config"
	"carelog-http-service/models"

	"gorm.io/gorm"
)

// HandoverFields 是一条交接事项的输入
type HandoverFields struct {
	OnDate     string // 'YYYY-MM-DD'，空值取当天
	Shift      string // 空值取day
	ResidentID *uint  // 可以不关联入住者
	Priority   int    // 0值取中(2)
	Title      string
	Body       string
}

// InterfaceHandoverService defines the handover service interface
type InterfaceHandoverService interface {
	CreateHandover(fields HandoverFields, staffName string) (*models.HandoverItem, error)
	ListHandover(onDate, shift string) ([]models.HandoverRow, error)
	DeleteHandover(id uint) error
}

// HandoverService 提供交接板相关的服务
type HandoverService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHandoverService 创建一个新的交接服务
func NewHandoverService(db *gorm.DB, cfg *config.Config) InterfaceHandoverService {
	return &HandoverService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateHandover 创建交接事项。日期默认当天，班次默认day，优先级默认中
func (s *HandoverService) CreateHandover(fields HandoverFields, staffName string) (*models.HandoverItem, error) {
	if fields.OnDate == "" {
		fields.OnDate = time.Now().Format("2006-01-02")
	}
	if fields.Shift == "" {
		fields.Shift = models.ShiftDay
	}
	if fields.Priority == 0 {
		fields.Priority = models.PriorityMiddle
	}

	// 关联了入住者时验证其存在
	if fields.ResidentID != nil {
		var resident models.Resident
		if err := s.DB.First(&resident, *fields.ResidentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: resident %d", ErrNotFound, *fields.ResidentID)
			}
			return nil, err
		}
	}

	item := models.HandoverItem{
		OnDate:     fields.OnDate,
		Shift:      fields.Shift,
		ResidentID: fields.ResidentID,
		Priority:   fields.Priority,
		Title:      fields.Title,
		Body:       fields.Body,
		StaffName:  staffName,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// 2 ListHandover 获取某天某班次的交接事项。
// 排序约定: 优先级升序(1=高在前)，同优先级内新的在前
func (s *HandoverService) ListHandover(onDate, shift string) ([]models.HandoverRow, error) {
	if onDate == "" {
		onDate = time.Now().Format("2006-01-02")
	}
	if shift == "" {
		shift = models.ShiftDay
	}

	var rows []models.HandoverRow
	err := s.DB.Table("handover_items AS h").
		Select("h.id, h.on_date, h.shift, h.resident_id, u.name AS resident_name, h.priority, h.title, h.body, h.staff_name, h.created_at").
		Joins("LEFT JOIN residents u ON h.resident_id = u.id").
		Where("h.on_date = ? AND h.shift = ?", onDate, shift).
		Order("h.priority ASC, h.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 3 DeleteHandover 删除交接事项
func (s *HandoverService) DeleteHandover(id uint) error {
	var item models.HandoverItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: handover %d", ErrNotFound, id)
		}
		return err
	}
	return s.DB.Delete(&item).Error
}
