package controllers

import (
	"net/http"
	"strconv"

	"carelog-http-service/internal/error/code"
	"carelog-http-service/internal/error/response"
	"carelog-http-service/middleware"
	"carelog-http-service/services"
	"carelog-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceRecordController 定义护理记录控制器接口
type InterfaceRecordController interface {
	GetRecords()
	CreateRecord()
}

// RecordController 护理记录控制器
type RecordController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRecordController 创建一个新的护理记录控制器
func NewRecordController(ctx *gin.Context, container *container.ServiceContainer) *RecordController {
	return &RecordController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateRecordRequest 创建护理记录请求。
// 各观察项选中"其他"(Other/その他)且填写了对应的*_other时，存自由文本
type CreateRecordRequest struct {
	ResidentID      uint   `json:"resident_id" binding:"required" example:"1"`
	Meal            string `json:"meal" example:"All"`
	MealOther       string `json:"meal_other" example:""`
	Medication      string `json:"medication" example:"Done"`
	MedicationOther string `json:"medication_other" example:""`
	Toilet          string `json:"toilet" example:"Normal"`
	ToiletOther     string `json:"toilet_other" example:""`
	Condition       string `json:"condition" example:"Good"`
	ConditionOther  string `json:"condition_other" example:""`
	Memo            string `json:"memo" example:"ate well"`
}

// HandleRecordFunc 返回一个处理护理记录请求的Gin处理函数
func HandleRecordFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRecordController(ctx, container)

		switch method {
		case "getRecords":
			controller.GetRecords()
		case "createRecord":
			controller.CreateRecord()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1. GetRecords 获取护理记录列表
// @Summary      获取护理记录列表
// @Description  获取护理记录，最新的在前，带入住者姓名。可用resident_id过滤
// @Tags         Record
// @Produce      json
// @Param        resident_id query int false "入住者ID"
// @Success      200  {object}  response.Response
// @Router       /records [get]
// @Security     BearerAuth
func (c *RecordController) GetRecords() {
	recordService := c.Container.GetService("record").(services.InterfaceRecordService)

	if residentParam := c.Ctx.Query("resident_id"); residentParam != "" {
		residentID, err := strconv.ParseUint(residentParam, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx)
			return
		}
		rows, err := recordService.GetRecordsByResident(uint(residentID))
		if err != nil {
			response.FromError(c.Ctx, err, code.ErrCareRecordNotFound)
			return
		}
		response.Success(c.Ctx, rows)
		return
	}

	rows, err := recordService.GetAllRecords()
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrCareRecordNotFound)
		return
	}
	response.Success(c.Ctx, rows)
}

// 2. CreateRecord 创建护理记录
// @Summary      创建护理记录
// @Description  为入住者添加一条观察记录，记录人取当前登录员工，时间戳由服务端指定
// @Tags         Record
// @Accept       json
// @Produce      json
// @Param        request body CreateRecordRequest true "记录内容"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /records [post]
// @Security     BearerAuth
func (c *RecordController) CreateRecord() {
	var req CreateRecordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx)
		return
	}

	// 记录人从会话取，不信任请求体
	info, ok := middleware.GetSessionInfo(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenInvalid, nil)
		return
	}

	recordService := c.Container.GetService("record").(services.InterfaceRecordService)
	record, err := recordService.CreateRecord(req.ResidentID, services.CareRecordFields{
		Meal:            req.Meal,
		MealOther:       req.MealOther,
		Medication:      req.Medication,
		MedicationOther: req.MedicationOther,
		Toilet:          req.Toilet,
		ToiletOther:     req.ToiletOther,
		Condition:       req.Condition,
		ConditionOther:  req.ConditionOther,
		Memo:            req.Memo,
	}, info.StaffName)
	if err != nil {
		response.FromError(c.Ctx, err, code.ErrResidentNotFound)
		return
	}
	response.Success(c.Ctx, record)
}
