package services

import (
	"errors"
	"fmt"
	"strings"

	"carelog-http-service/config"
	"carelog-http-service/models"

	"gorm.io/gorm"
)

// 观察项下拉框中"其他"选项的哨兵值，命中时用自由文本覆盖
var otherSentinels = []string{"Other", "その他"}

// CareRecordFields 是一条护理记录的观察项输入。
// 每个观察项由下拉选择值和"其他"自由文本组成。
type CareRecordFields struct {
	Meal            string
	MealOther       string
	Medication      string
	MedicationOther string
	Toilet          string
	ToiletOther     string
	Condition       string
	ConditionOther  string
	Memo            string
}

// InterfaceRecordService defines the care record service interface
type InterfaceRecordService interface {
	CreateRecord(residentID uint, fields CareRecordFields, staffName string) (*models.CareRecord, error)
	GetAllRecords() ([]models.CareRecordRow, error)
	GetRecordsByResident(residentID uint) ([]models.CareRecordRow, error)
}

// RecordService 提供护理记录相关的服务。记录只增不改
type RecordService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRecordService 创建一个新的护理记录服务
func NewRecordService(db *gorm.DB, cfg *config.Config) InterfaceRecordService {
	return &RecordService{
		DB:     db,
		Config: cfg,
	}
}

// resolveChoice 选中"其他"且填写了自由文本时存自由文本，否则原样存选中值
func resolveChoice(selected, other string) string {
	other = strings.TrimSpace(other)
	for _, sentinel := range otherSentinels {
		if selected == sentinel && other != "" {
			return other
		}
	}
	return selected
}

// 1 CreateRecord 创建护理记录，时间戳由服务端指定
func (s *RecordService) CreateRecord(residentID uint, fields CareRecordFields, staffName string) (*models.CareRecord, error) {
	// 验证入住者是否存在
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resident %d", ErrNotFound, residentID)
		}
		return nil, err
	}

	record := models.CareRecord{
		ResidentID: residentID,
		Meal:       resolveChoice(fields.Meal, fields.MealOther),
		Medication: resolveChoice(fields.Medication, fields.MedicationOther),
		Toilet:     resolveChoice(fields.Toilet, fields.ToiletOther),
		Condition:  resolveChoice(fields.Condition, fields.ConditionOther),
		Memo:       fields.Memo,
		StaffName:  staffName,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// 2 GetAllRecords 获取所有护理记录，最新的在前，带入住者姓名。
// 内连接天然排除了入住者已不存在的记录
func (s *RecordService) GetAllRecords() ([]models.CareRecordRow, error) {
	var rows []models.CareRecordRow
	err := s.DB.Table("care_records AS r").
		Select("r.id, r.resident_id, u.name AS resident_name, r.meal, r.medication, r.toilet, r.condition, r.memo, r.staff_name, r.created_at").
		Joins("JOIN residents u ON r.resident_id = u.id").
		Order("r.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 3 GetRecordsByResident 获取某个入住者的护理记录，最新的在前
func (s *RecordService) GetRecordsByResident(residentID uint) ([]models.CareRecordRow, error) {
	var rows []models.CareRecordRow
	err := s.DB.Table("care_records AS r").
		Select("r.id, r.resident_id, u.name AS resident_name, r.meal, r.medication, r.toilet, r.condition, r.memo, r.staff_name, r.created_at").
		Joins("JOIN residents u ON r.resident_id = u.id").
		Where("r.resident_id = ?", residentID).
		Order("r.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
