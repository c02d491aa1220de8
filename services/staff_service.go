package services

import (
	"errors"
	"fmt"

	"carelog-http-service/config"
	"carelog-http-service/models"
	"carelog-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceStaffService defines the staff service interface
type InterfaceStaffService interface {
	Register(name, password string) (*models.Staff, error)
	Authenticate(name, password string) (*models.Staff, error)
	IssueLoginToken(name, role string) (string, error)
	ReissueLoginToken(id uint) (*models.Staff, string, error)
	AuthenticateByToken(token string) (*models.Staff, error)
	QRLoginURL(token string) string
	GetAllStaff() ([]models.Staff, error)
	GetStaffByID(id uint) (*models.Staff, error)
	CreateStaff(name, password, role string) (*models.Staff, error)
	UpdateStaff(id uint, name, role, password string) (*models.Staff, error)
	DeleteStaff(id uint) error
}

// StaffService 提供员工账户与登录相关的服务
type StaffService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStaffService 创建一个新的员工服务
func NewStaffService(db *gorm.DB, cfg *config.Config) InterfaceStaffService {
	return &StaffService{
		DB:     db,
		Config: cfg,
	}
}

// normalizeRole 未知角色一律按caregiver处理
func normalizeRole(role string) string {
	if role == models.RoleAdmin {
		return models.RoleAdmin
	}
	return models.RoleCaregiver
}

// 姓名不存在或账户无密码时用来做一次同等代价的bcrypt比较，
// 两种失败路径耗时一致，外部无法据此枚举已注册的姓名。比较结果一律丢弃
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// 1 Register 自助注册，角色固定为caregiver
func (s *StaffService) Register(name, password string) (*models.Staff, error) {
	staff := models.Staff{
		Name:     name,
		Password: password, // BeforeCreate钩子负责哈希
		Role:     models.RoleCaregiver,
	}
	// 姓名唯一性由唯一索引判定，并发注册同名时也只有一个能成功
	if err := s.DB.Create(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return &staff, nil
}

// 2 Authenticate 用姓名和密码登录。失败原因对外不区分，耗时也不区分
func (s *StaffService) Authenticate(name, password string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.Where("name = ?", name).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			models.CheckPasswordHash(password, dummyPasswordHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 空密码账户（仅QR登录）必然失败，但同样付出一次完整比较的代价
	if staff.Password == "" {
		models.CheckPasswordHash(password, dummyPasswordHash)
		return nil, ErrInvalidCredentials
	}

	if !models.CheckPasswordHash(password, staff.Password) {
		return nil, ErrInvalidCredentials
	}
	return &staff, nil
}

// 3 IssueLoginToken 为指定姓名签发新的QR登录令牌。
// 已有令牌整体替换，旧令牌从提交那一刻起失效。
// 姓名不存在时按原有运维习惯创建一个无密码账户（只能QR登录）。
func (s *StaffService) IssueLoginToken(name, role string) (string, error) {
	token := utils.RandomToken()
	role = normalizeRole(role)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		err := tx.Where("name = ?", name).First(&staff).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			staff = models.Staff{
				Name:       name,
				Role:       role,
				LoginToken: &token,
			}
			return tx.Create(&staff).Error
		}
		if err != nil {
			return err
		}

		// 单条UPDATE内完成替换，不会出现新旧令牌同时有效的窗口
		return tx.Model(&staff).Updates(map[string]interface{}{
			"login_token": token,
			"role":        role,
		}).Error
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// 4 ReissueLoginToken 为已有账户重新签发令牌，角色保持不变
func (s *StaffService) ReissueLoginToken(id uint) (*models.Staff, string, error) {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return nil, "", err
	}

	token := utils.RandomToken()
	if err := s.DB.Model(staff).Update("login_token", token).Error; err != nil {
		return nil, "", err
	}
	return staff, token, nil
}

// 5 AuthenticateByToken 用QR令牌登录。令牌是长期凭证，可重复使用
func (s *StaffService) AuthenticateByToken(token string) (*models.Staff, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var staff models.Staff
	if err := s.DB.Where("login_token = ?", token).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return &staff, nil
}

// QRLoginURL 生成QR码中编码的登录链接，图片渲染由前端负责
func (s *StaffService) QRLoginURL(token string) string {
	return fmt.Sprintf("%s/login/%s", s.Config.QRBaseURL, token)
}

// 6 GetAllStaff 获取所有员工
func (s *StaffService) GetAllStaff() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Order("id ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// 7 GetStaffByID 根据ID获取员工
func (s *StaffService) GetStaffByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &staff, nil
}

// 8 CreateStaff 管理员添加员工，可指定角色
func (s *StaffService) CreateStaff(name, password, role string) (*models.Staff, error) {
	staff := models.Staff{
		Name:     name,
		Password: password,
		Role:     normalizeRole(role),
	}
	if err := s.DB.Create(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return &staff, nil
}

// 9 UpdateStaff 更新员工信息，密码为空时保持不变
func (s *StaffService) UpdateStaff(id uint, name, role, password string) (*models.Staff, error) {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return nil, err
	}

	// 改名时检查唯一性
	if name != "" && name != staff.Name {
		var count int64
		if err := s.DB.Model(&models.Staff{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateIdentity
		}
		staff.Name = name
	}
	if role != "" {
		staff.Role = normalizeRole(role)
	}
	if password != "" {
		staff.Password = password // BeforeSave钩子负责哈希
	}

	if err := s.DB.Save(staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return staff, nil
}

// 10 DeleteStaff 删除员工。历史记录中的姓名为冗余字段，不受影响
func (s *StaffService) DeleteStaff(id uint) error {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(staff).Error
}
