package services

import (
	"errors"
	"fmt"
	"strings"

	"carelog-http-service/config"
	"carelog-http-service/models"

	"gorm.io/gorm"
)

// InterfaceResidentService defines the resident service interface
type InterfaceResidentService interface {
	GetAllResidents() ([]models.Resident, error)
	GetResidentByID(id uint) (*models.Resident, error)
	CreateResident(resident *models.Resident) error
	UpdateResident(id uint, resident *models.Resident) (*models.Resident, error)
	DeleteResident(id uint) error
}

// ResidentService 提供入住者相关的服务
type ResidentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResidentService 创建一个新的入住者服务
func NewResidentService(db *gorm.DB, cfg *config.Config) InterfaceResidentService {
	return &ResidentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllResidents 获取所有入住者，按ID升序（即录入顺序）
func (s *ResidentService) GetAllResidents() ([]models.Resident, error) {
	var residents []models.Resident
	if err := s.DB.Order("id ASC").Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

// 2 GetResidentByID 根据ID获取入住者
func (s *ResidentService) GetResidentByID(id uint) (*models.Resident, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resident %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &resident, nil
}

// 3 CreateResident 创建新入住者，姓名必填
func (s *ResidentService) CreateResident(resident *models.Resident) error {
	if strings.TrimSpace(resident.Name) == "" {
		return fmt.Errorf("%w: resident name is required", ErrConstraintViolation)
	}
	if resident.Age != nil && *resident.Age < 0 {
		return fmt.Errorf("%w: age must be non-negative", ErrConstraintViolation)
	}
	return s.DB.Create(resident).Error
}

// 4 UpdateResident 全字段替换入住者信息
func (s *ResidentService) UpdateResident(id uint, updated *models.Resident) (*models.Resident, error) {
	resident, err := s.GetResidentByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(updated.Name) == "" {
		return nil, fmt.Errorf("%w: resident name is required", ErrConstraintViolation)
	}
	if updated.Age != nil && *updated.Age < 0 {
		return nil, fmt.Errorf("%w: age must be non-negative", ErrConstraintViolation)
	}

	resident.Name = updated.Name
	resident.Age = updated.Age
	resident.Gender = updated.Gender
	resident.RoomNumber = updated.RoomNumber
	resident.Notes = updated.Notes

	if err := s.DB.Save(resident).Error; err != nil {
		return nil, err
	}
	return resident, nil
}

// 5 DeleteResident 删除入住者，其护理记录由外键级联删除
func (s *ResidentService) DeleteResident(id uint) error {
	resident, err := s.GetResidentByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(resident).Error
}
