package container

import (
	"context"
	"log"
	"sync"
	"time"

	"carelog-http-service/config"
	"carelog-http-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService     services.InterfaceJWTService
	sessionService services.InterfaceSessionService

	// 业务服务
	staffService    services.InterfaceStaffService
	residentService services.InterfaceResidentService
	recordService   services.InterfaceRecordService
	handoverService services.InterfaceHandoverService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接，会话存储依赖Redis
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，Cookie会话将不可用", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.sessionService = services.NewSessionService(c.redis, c.config)

	// 初始化业务服务
	c.staffService = services.NewStaffService(c.db, c.config)
	c.residentService = services.NewResidentService(c.db, c.config)
	c.recordService = services.NewRecordService(c.db, c.config)
	c.handoverService = services.NewHandoverService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "session":
		return c.sessionService
	case "staff":
		return c.staffService
	case "resident":
		return c.residentService
	case "record":
		return c.recordService
	case "handover":
		return c.handoverService
	default:
		return nil
	}
}
