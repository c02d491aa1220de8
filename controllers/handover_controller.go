package controllers

import (
	"net/http"

	"carelog-http-service/internal/error/code"
	"carelog-http-service/internal/error/response"
	"carelog-http-service/middleware"
	"carelog-http-service/services"
	"carelog-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceHandoverController 定义交接控制器接口
type InterfaceHandoverController interface {
	GetHandover()
	CreateHandover()
	DeleteHandover()
}

// HandoverController 交接板控制器
type HandoverController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHandoverController 创建一个新的交接控制器
func NewHandoverController(ctx *gin.Context, container *container.ServiceContainer) *HandoverController {
	return &HandoverController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateHandoverRequest 创建交接事项请求
type CreateHandoverRequest struct {
	OnDate     string `json:"on_date" example:"2025-10-24"`
	Shift      string `json:"shift" example:"day"`
	ResidentID *uint  `json:"resident_id" example:"1"`
	Priority   int    `json:"priority" example:"2"`
	Title      string `json:"title" example:"夜間の様子"`
	Body       string `json:"body" example:"よく眠れていた"`
}

// HandleHandoverFunc 返回一个处理交接请求的Gin处理函数
func HandleHandoverFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHandoverController(ctx, container)

		switch method {
		case "getHandover":
			controller.GetHandover()
		case "createHandover":
			controller.CreateHandover()
		case "deleteHandover":
			controller.DeleteHandover()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1. GetHandover 获取交接事项列表
// @Summary      获取交接事项列表
// @Description  获取某天某班次的交接事项，优先级高的在前，同优先级新的在前。日期默认当天，班次默认day
// @Tags         Handover
// @Produce      json
// @Param        date query string false "日期 YYYY-MM-DD"
// @Param        shift query string false "班次 day/evening/night"
// @Success      200  {object}  response.Response
// @Router       /handover [get]
// @Security     BearerAuth
func (c *HandoverController) GetHandover() {
	handoverService := c.Container.GetService("handover").(services.InterfaceHandoverService)
	rows, err := handoverService.ListHandover(c.Ctx.Query("date"), c.Ctx.Query("shift"))
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrHandoverNotFound)
		return
	}
	response.Success(c.Ctx, rows)
}

// 2. CreateHandover 创建交接事项
// @Summary      创建交接事项
// @Description  添加交接事项，作者取当前登录员工
// @Tags         Handover
// @Accept       json
// @Produce      json
// @Param        request body CreateHandoverRequest true "交接内容"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /handover [post]
// @Security     BearerAuth
func (c *HandoverController) CreateHandover() {
	var req CreateHandoverRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	info, ok := middleware.GetSessionInfo(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	handoverService := c.Container.GetService("handover").(services.InterfaceHandoverService)
	item, err := handoverService.CreateHandover(services.HandoverFields{
		OnDate:     req.OnDate,
		Shift:      req.Shift,
		ResidentID: req.ResidentID,
		Priority:   req.Priority,
		Title:      req.Title,
		Body:       req.Body,
	}, info.StaffName)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrResidentNotFound)
		return
	}
	response.Success(c.Ctx, item)
}

// 3. DeleteHandover 删除交接事项
// @Summary      删除交接事项
// @Tags         Handover
// @Produce      json
// @Param        id path int true "交接事项ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /handover/{id} [delete]
// @Security     BearerAuth
func (c *HandoverController) DeleteHandover() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	handoverService := c.Container.GetService("handover").(services.InterfaceHandoverService)
	if err := handoverService.DeleteHandover(id); err != nil {
		response.FromError(c.Ctx, err, code.ErrHandoverNotFound)
		return
	}
	response.Success(c.Ctx, nil)
}
