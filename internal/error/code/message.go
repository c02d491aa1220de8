package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:      "成功",
	ErrUnknown:      "未知错误",
	ErrBind:         "请求参数绑定错误",
	ErrValidation:   "请求参数验证错误",
	ErrTokenInvalid: "无效的认证令牌",
	ErrForbidden:    "需要管理员权限",

	// 员工相关错误码
	ErrStaffNotFound:          "员工不存在",
	ErrStaffAlreadyExist:      "同名员工已存在",
	ErrStaffPasswordIncorrect: "姓名或密码错误",

	// 入住者相关错误码
	ErrResidentNotFound:     "入住者不存在",
	ErrResidentAlreadyExist: "入住者已存在",

	// 护理记录相关错误码
	ErrCareRecordNotFound: "护理记录不存在",

	// 交接相关错误码
	ErrHandoverNotFound: "交接事项不存在",

	// 数据库相关错误码
	ErrDatabase:           "数据库错误",
	ErrConstraint:         "数据完整性约束冲突",
	ErrStorageUnavailable: "存储不可用",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:      StatusOK,
	ErrUnknown:      StatusInternalServerError,
	ErrBind:         StatusBadRequest,
	ErrValidation:   StatusBadRequest,
	ErrTokenInvalid: StatusUnauthorized,
	ErrForbidden:    StatusForbidden,

	// 员工相关错误码
	ErrStaffNotFound:          StatusNotFound,
	ErrStaffAlreadyExist:      StatusBadRequest,
	ErrStaffPasswordIncorrect: StatusUnauthorized,

	// 入住者相关错误码
	ErrResidentNotFound:     StatusNotFound,
	ErrResidentAlreadyExist: StatusBadRequest,

	// 护理记录相关错误码
	ErrCareRecordNotFound: StatusNotFound,

	// 交接相关错误码
	ErrHandoverNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:           StatusInternalServerError,
	ErrConstraint:         StatusBadRequest,
	ErrStorageUnavailable: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
