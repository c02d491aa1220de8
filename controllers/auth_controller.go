package controllers

import (
	"net/http"

	"carelog-http-service/config"
	"carelog-http-service/internal/error/code"
	"carelog-http-service/internal/error/response"
	"carelog-http-service/middleware"
	"carelog-http-service/services"
	"carelog-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Register()
	Login()
	TokenLogin()
	Logout()
}

// AuthController 认证控制器
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 自助注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"田中"`
	Password string `json:"password" binding:"required" example:"Pass@123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Name     string `json:"name" binding:"required" example:"田中"`
	Password string `json:"password" binding:"required" example:"Pass@123"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "tokenLogin":
			controller.TokenLogin()
		case "logout":
			controller.Logout()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// startSession 登录成功后建立会话：写入Redis会话cookie并签发JWT
func (c *AuthController) startSession(staffID uint, staffName, role string) (gin.H, error) {
	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	sessionID, err := sessionService.Create(c.Ctx.Request.Context(), services.SessionData{
		StaffID:   staffID,
		StaffName: staffName,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}

	token, err := jwtService.GenerateToken(staffID, staffName, role)
	if err != nil {
		return nil, err
	}

	// 会话cookie，有效期与Redis的滑动过期一致
	cfg := c.Container.GetService("config").(*config.Config)
	c.Ctx.SetCookie(middleware.SessionCookieName, sessionID, cfg.SessionTTLDays*24*3600, "/", "", false, true)

	return gin.H{
		"token":      token,
		"staff_id":   staffID,
		"staff_name": staffName,
		"role":       role,
	}, nil
}

// 1. Register 员工自助注册
// @Summary      员工自助注册
// @Description  用姓名和密码注册新员工账户，角色固定为caregiver
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册信息"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.Register(req.Name, req.Password)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":   staff.ID,
		"name": staff.Name,
		"role": staff.Role,
	})
}

// 2. Login 员工登录
// @Summary      员工登录
// @Description  用姓名和密码登录，返回JWT令牌并设置会话cookie
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录信息"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.Authenticate(req.Name, req.Password)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}

	data, err := c.startSession(staff.ID, staff.Name, staff.Role)
	if err != nil {
		response.Fail(c.Ctx, code.ErrUnknown, nil)
		return
	}
	response.Success(c.Ctx, data)
}

// 3. TokenLogin QR令牌登录
// @Summary      QR令牌登录
// @Description  用QR码中的长期令牌登录
// @Tags         Auth
// @Produce      json
// @Param        token path string true "登录令牌"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /login/{token} [get]
func (c *AuthController) TokenLogin() {
	token := c.Ctx.Param("token")

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.AuthenticateByToken(token)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}

	data, err := c.startSession(staff.ID, staff.Name, staff.Role)
	if err != nil {
		response.Fail(c.Ctx, code.ErrUnknown, nil)
		return
	}
	response.Success(c.Ctx, data)
}

// 4. Logout 登出
// @Summary      登出
// @Description  销毁服务端会话并清除cookie
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (c *AuthController) Logout() {
	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)

	if sessionID, err := c.Ctx.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		_ = sessionService.Delete(c.Ctx.Request.Context(), sessionID)
	}
	c.Ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	response.Success(c.Ctx, nil)
}
