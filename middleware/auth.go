package middleware

import (
	"net/http"
	"strings"

	"carelog-http-service/models"
	"carelog-http-service/services"

	"github.com/gin-gonic/gin"
)

// 会话cookie名
const SessionCookieName = "session_id"

// gin上下文中的会话键
const sessionInfoKey = "session_info"

// SessionInfo 是认证后放入请求上下文的显式会话值，
// 业务服务只通过参数接收身份，不读取任何全局状态
type SessionInfo struct {
	StaffID   uint
	StaffName string
	Role      string
}

// IsAdmin 判断会话角色是否为管理员
func (s SessionInfo) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

var (
	jwtService     services.InterfaceJWTService
	sessionService services.InterfaceSessionService
)

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(jwt services.InterfaceJWTService, session services.InterfaceSessionService) {
	jwtService = jwt
	sessionService = session
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateStaff 验证请求身份：优先JWT授权头，其次会话cookie
func AuthenticateStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 尝试JWT
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			claims, err := jwtService.ExtractClaims(extractToken(authHeader))
			if err == nil {
				c.Set(sessionInfoKey, SessionInfo{
					StaffID:   claims.UserID,
					StaffName: claims.Name,
					Role:      claims.Role,
				})
				c.Next()
				return
			}
		}

		// 尝试会话cookie
		if sessionID, err := c.Cookie(SessionCookieName); err == nil && sessionID != "" {
			data, err := sessionService.Get(c.Request.Context(), sessionID)
			if err == nil && data != nil {
				c.Set(sessionInfoKey, SessionInfo{
					StaffID:   data.StaffID,
					StaffName: data.StaffName,
					Role:      data.Role,
				})
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "需要登录",
			"data":    nil,
		})
		c.Abort()
	}
}

// RequireAdmin 验证管理员权限，必须在AuthenticateStaff之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := GetSessionInfo(c)
		if !ok || !info.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "需要管理员权限",
				"data":    nil,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSessionInfo 获取当前请求的会话信息
func GetSessionInfo(c *gin.Context) (SessionInfo, bool) {
	value, exists := c.Get(sessionInfoKey)
	if !exists {
		return SessionInfo{}, false
	}
	info, ok := value.(SessionInfo)
	return info, ok
}
