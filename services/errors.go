package services

import "errors"

// 核心服务统一的错误类别，调用方用 errors.Is 判断
var (
	// ErrDuplicateIdentity 注册或添加员工时姓名已被占用
	ErrDuplicateIdentity = errors.New("duplicate identity")
	// ErrInvalidCredentials 姓名或密码错误，对外不区分具体原因
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken QR登录令牌无效
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden 已认证但角色权限不足
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound 引用的实体不存在
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation 存储层完整性约束冲突
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStorageUnavailable 存储层不可达
	ErrStorageUnavailable = errors.New("storage unavailable")
)
