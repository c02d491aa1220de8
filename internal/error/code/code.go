package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrForbidden - 403: 权限不足.
	ErrForbidden
)

// 员工相关错误码 (101xxx).
const (
	// ErrStaffNotFound - 404: 员工不存在.
	ErrStaffNotFound int = iota + 101000
	// ErrStaffAlreadyExist - 400: 同名员工已存在.
	ErrStaffAlreadyExist
	// ErrStaffPasswordIncorrect - 401: 姓名或密码错误.
	ErrStaffPasswordIncorrect
)

// 入住者相关错误码 (102xxx).
const (
	// ErrResidentNotFound - 404: 入住者不存在.
	ErrResidentNotFound int = iota + 102000
	// ErrResidentAlreadyExist - 400: 入住者已存在.
	ErrResidentAlreadyExist
)

// 护理记录相关错误码 (103xxx).
const (
	// ErrCareRecordNotFound - 404: 护理记录不存在.
	ErrCareRecordNotFound int = iota + 103000
)

// 交接相关错误码 (104xxx).
const (
	// ErrHandoverNotFound - 404: 交接事项不存在.
	ErrHandoverNotFound int = iota + 104000
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrConstraint - 400: 数据完整性约束冲突.
	ErrConstraint
	// ErrStorageUnavailable - 500: 存储不可用.
	ErrStorageUnavailable
)
