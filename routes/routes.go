package routes

import (
	"carelog-http-service/config"
	"carelog-http-service/controllers"
	_ "carelog-http-service/docs"
	"carelog-http-service/middleware"
	"carelog-http-service/services"
	"carelog-http-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.QRBaseURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// 初始化认证中间件
	middleware.InitAuthMiddleware(
		serviceContainer.GetService("jwt").(services.InterfaceJWTService),
		serviceContainer.GetService("session").(services.InterfaceSessionService),
	)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// QR码中的登录链接指向根路径
	r.GET("/login/:token", controllers.HandleAuthFunc(container, "tokenLogin"))

	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要登录的路由
	registerAuthenticatedRoutes(api, container)
	// 注册仅管理员的路由
	registerAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 认证路由
	api.POST("/auth/register", controllers.HandleAuthFunc(container, "register"))
	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要登录的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateStaff())

	// 登出
	auth.POST("/auth/logout", controllers.HandleAuthFunc(container, "logout"))

	// 入住者路由（读取对所有登录员工开放）
	auth.Group("/residents").GET("", controllers.HandleResidentFunc(container, "getResidents"))
	auth.Group("/residents").GET("/:id", controllers.HandleResidentFunc(container, "getResident"))

	// 护理记录路由
	auth.Group("/records").GET("", controllers.HandleRecordFunc(container, "getRecords"))
	auth.Group("/records").POST("", controllers.HandleRecordFunc(container, "createRecord"))

	// 交接板路由
	auth.Group("/handover").GET("", controllers.HandleHandoverFunc(container, "getHandover"))
	auth.Group("/handover").POST("", controllers.HandleHandoverFunc(container, "createHandover"))
	auth.Group("/handover").DELETE("/:id", controllers.HandleHandoverFunc(container, "deleteHandover"))
}

// registerAdminRoutes 注册仅管理员的路由
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateStaff(), middleware.RequireAdmin())

	// 入住者管理
	admin.Group("/residents").POST("", controllers.HandleResidentFunc(container, "createResident"))
	admin.Group("/residents").PUT("/:id", controllers.HandleResidentFunc(container, "updateResident"))
	admin.Group("/residents").DELETE("/:id", controllers.HandleResidentFunc(container, "deleteResident"))

	// 员工管理
	admin.Group("/staff").GET("", controllers.HandleStaffFunc(container, "getStaffList"))
	admin.Group("/staff").GET("/:id", controllers.HandleStaffFunc(container, "getStaff"))
	admin.Group("/staff").POST("", controllers.HandleStaffFunc(container, "createStaff"))
	admin.Group("/staff").PUT("/:id", controllers.HandleStaffFunc(container, "updateStaff"))
	admin.Group("/staff").DELETE("/:id", controllers.HandleStaffFunc(container, "deleteStaff"))

	// QR登录令牌签发
	admin.Group("/staff").POST("/qr", controllers.HandleStaffFunc(container, "generateQR"))
	admin.Group("/staff").POST("/:id/qr", controllers.HandleStaffFunc(container, "reissueQR"))
}
