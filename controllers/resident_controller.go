package controllers

import (
	"net/http"
	"strconv"

	"carelog-http-service/internal/error/code"
	"carelog-http-service/internal/error/response"
	"carelog-http-service/models"
	"carelog-http-service/services"
	"carelog-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceResidentController 定义入住者控制器接口
type InterfaceResidentController interface {
	GetResidents()
	GetResident()
	CreateResident()
	UpdateResident()
	DeleteResident()
}

// ResidentController 入住者控制器
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController 创建一个新的入住者控制器
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResidentRequest 创建/更新入住者请求
type ResidentRequest struct {
	Name       string `json:"name" binding:"required" example:"太郎"`
	Age        *int   `json:"age" example:"84"`
	Gender     string `json:"gender" example:"男"`
	RoomNumber string `json:"room_number" example:"203"`
	Notes      string `json:"notes" example:"アレルギー: 卵"`
}

// HandleResidentFunc 返回一个处理入住者请求的Gin处理函数
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getResidents":
			controller.GetResidents()
		case "getResident":
			controller.GetResident()
		case "createResident":
			controller.CreateResident()
		case "updateResident":
			controller.UpdateResident()
		case "deleteResident":
			controller.DeleteResident()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// parseIDParam 解析路径中的ID参数
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(ctx)
		return 0, false
	}
	return uint(id), true
}

// 1. GetResidents 获取入住者列表
// @Summary      获取入住者列表
// @Description  获取所有入住者，按录入顺序排列
// @Tags         Resident
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /residents [get]
// @Security     BearerAuth
func (c *ResidentController) GetResidents() {
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	residents, err := residentService.GetAllResidents()
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrResidentNotFound)
		return
	}
	response.Success(c.Ctx, residents)
}

// 2. GetResident 获取入住者详情
// @Summary      获取入住者详情
// @Tags         Resident
// @Produce      json
// @Param        id path int true "入住者ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /residents/{id} [get]
// @Security     BearerAuth
func (c *ResidentController) GetResident() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.GetResidentByID(id)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrResidentNotFound)
		return
	}
	response.Success(c.Ctx, resident)
}

// 3. CreateResident 创建入住者
// @Summary      创建入住者
// @Description  管理员添加新入住者
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        request body ResidentRequest true "入住者信息"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /residents [post]
// @Security     BearerAuth
func (c *ResidentController) CreateResident() {
	var req ResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	resident := models.Resident{
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		RoomNumber: req.RoomNumber,
		Notes:      req.Notes,
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.CreateResident(&resident); err != nil {
		response.FromError(c.Ctx, err, code.ErrResidentNotFound)
		return
	}
	response.Success(c.Ctx, resident)
}

// 4. UpdateResident 更新入住者
// @Summary      更新入住者
// @Description  管理员全字段替换入住者信息
// @Tags         Resident
// @Accept       json
// @Produce      json
// @Param        id path int true "入住者ID"
// @Param        request body ResidentRequest true "入住者信息"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /residents/{id} [put]
// @Security     BearerAuth
func (c *ResidentController) UpdateResident() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req ResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.UpdateResident(id, &models.Resident{
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		RoomNumber: req.RoomNumber,
		Notes:      req.Notes,
	})
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrResidentNotFound)
		return
	}
	response.Success(c.Ctx, resident)
}

// 5. DeleteResident 删除入住者
// @Summary      删除入住者
// @Description  管理员删除入住者，其护理记录一并级联删除
// @Tags         Resident
// @Produce      json
// @Param        id path int true "入住者ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /residents/{id} [delete]
// @Security     BearerAuth
func (c *ResidentController) DeleteResident() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.DeleteResident(id); err != nil {
		response.FromError(c.Ctx, err, code.ErrResidentNotFound)
		return
	}
	response.Success(c.Ctx, nil)
}
