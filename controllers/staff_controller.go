package controllers

import (
	"net/http"

	"carelog-http-service/internal/error/code"
	"carelog-http-service/internal/error/response"
	"carelog-http-service/services"
	"carelog-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceStaffController 定义员工管理控制器接口
type InterfaceStaffController interface {
	GetStaffList()
	GetStaff()
	CreateStaff()
	UpdateStaff()
	DeleteStaff()
	GenerateQR()
	ReissueQR()
}

// StaffController 员工管理控制器（仅管理员）
type StaffController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStaffController 创建一个新的员工管理控制器
func NewStaffController(ctx *gin.Context, container *container.ServiceContainer) *StaffController {
	return &StaffController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateStaffRequest 添加员工请求
type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required" example:"山田"`
	Password string `json:"password" example:"Pass@123"`
	Role     string `json:"role" example:"caregiver"`
}

// UpdateStaffRequest 更新员工请求，密码为空时保持不变
type UpdateStaffRequest struct {
	Name     string `json:"name" example:"山田"`
	Role     string `json:"role" example:"admin"`
	Password string `json:"password" example:""`
}

// GenerateQRRequest 签发QR登录令牌请求
type GenerateQRRequest struct {
	Name string `json:"name" binding:"required" example:"山田"`
	Role string `json:"role" example:"caregiver"`
}

// HandleStaffFunc 返回一个处理员工管理请求的Gin处理函数
func HandleStaffFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStaffController(ctx, container)

		switch method {
		case "getStaffList":
			controller.GetStaffList()
		case "getStaff":
			controller.GetStaff()
		case "createStaff":
			controller.CreateStaff()
		case "updateStaff":
			controller.UpdateStaff()
		case "deleteStaff":
			controller.DeleteStaff()
		case "generateQR":
			controller.GenerateQR()
		case "reissueQR":
			controller.ReissueQR()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1. GetStaffList 获取员工列表
// @Summary      获取员工列表
// @Tags         Staff
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /staff [get]
// @Security     BearerAuth
func (c *StaffController) GetStaffList() {
	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staffList, err := staffService.GetAllStaff()
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}
	response.Success(c.Ctx, staffList)
}

// 2. GetStaff 获取员工详情
// @Summary      获取员工详情
// @Tags         Staff
// @Produce      json
// @Param        id path int true "员工ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /staff/{id} [get]
// @Security     BearerAuth
func (c *StaffController) GetStaff() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.GetStaffByID(id)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}
	response.Success(c.Ctx, staff)
}

// 3. CreateStaff 添加员工
// @Summary      添加员工
// @Description  管理员添加员工，可指定角色
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        request body CreateStaffRequest true "员工信息"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /staff [post]
// @Security     BearerAuth
func (c *StaffController) CreateStaff() {
	var req CreateStaffRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.CreateStaff(req.Name, req.Password, req.Role)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}
	response.Success(c.Ctx, staff)
}

// 4. UpdateStaff 更新员工
// @Summary      更新员工
// @Description  更新姓名、角色，密码为空时保持不变
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        id path int true "员工ID"
// @Param        request body UpdateStaffRequest true "员工信息"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /staff/{id} [put]
// @Security     BearerAuth
func (c *StaffController) UpdateStaff() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateStaffRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.UpdateStaff(id, req.Name, req.Role, req.Password)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}
	response.Success(c.Ctx, staff)
}

// 5. DeleteStaff 删除员工
// @Summary      删除员工
// @Description  删除员工账户，其历史记录中的署名保留
// @Tags         Staff
// @Produce      json
// @Param        id path int true "员工ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /staff/{id} [delete]
// @Security     BearerAuth
func (c *StaffController) DeleteStaff() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	if err := staffService.DeleteStaff(id); err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}
	response.Success(c.Ctx, nil)
}

// 6. GenerateQR 按姓名签发QR登录令牌
// @Summary      签发QR登录令牌
// @Description  为指定姓名签发新令牌并返回登录链接，旧令牌立即失效。姓名不存在时创建无密码账户。QR图片由前端渲染
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        request body GenerateQRRequest true "签发对象"
// @Success      200  {object}  response.Response
// @Router       /staff/qr [post]
// @Security     BearerAuth
func (c *StaffController) GenerateQR() {
	var req GenerateQRRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	token, err := staffService.IssueLoginToken(req.Name, req.Role)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"name":      req.Name,
		"token":     token,
		"login_url": staffService.QRLoginURL(token),
	})
}

// 7. ReissueQR 为已有员工重新签发QR登录令牌
// @Summary      重新签发QR登录令牌
// @Description  为已有员工换发令牌，角色保持不变，旧令牌立即失效
// @Tags         Staff
// @Produce      json
// @Param        id path int true "员工ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /staff/{id}/qr [post]
// @Security     BearerAuth
func (c *StaffController) ReissueQR() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, token, err := staffService.ReissueLoginToken(id)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrStaffNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"name":      staff.Name,
		"token":     token,
		"login_url": staffService.QRLoginURL(token),
	})
}
