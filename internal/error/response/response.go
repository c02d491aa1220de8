package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carelog-http-service/internal/error/code"
	"carelog-http-service/services"
)

// Response 定义统一的响应格式
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int, data interface{}) {
	httpStatus := code.GetStatus(errorCode)
	message := code.GetMessage(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context) {
	Fail(c, code.ErrBind, nil)
}

// FromError 根据服务层错误类别返回对应的错误码
func FromError(c *gin.Context, err error, notFoundCode int) {
	switch {
	case errors.Is(err, services.ErrDuplicateIdentity):
		Fail(c, code.ErrStaffAlreadyExist, nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		Fail(c, code.ErrStaffPasswordIncorrect, nil)
	case errors.Is(err, services.ErrInvalidToken):
		Fail(c, code.ErrTokenInvalid, nil)
	case errors.Is(err, services.ErrForbidden):
		Fail(c, code.ErrForbidden, nil)
	case errors.Is(err, services.ErrNotFound):
		Fail(c, notFoundCode, nil)
	case errors.Is(err, services.ErrConstraintViolation):
		Fail(c, code.ErrConstraint, nil)
	case errors.Is(err, services.ErrStorageUnavailable):
		Fail(c, code.ErrStorageUnavailable, nil)
	default:
		Fail(c, code.ErrDatabase, nil)
	}
}
