// @title           CareLog HTTP Service API
// @version         1.0
// @description     Care facility daily logging service with resident records, handover board and QR login

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"carelog-http-service/config"
	"carelog-http-service/database"
	"carelog-http-service/routes"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}

	// 根据配置执行不同的数据库操作
	if cfg.DBMigrationMode == "drop" {
		// 删除并重建表（仅限开发环境）
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		if err := database.DropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		// 先跑版本化迁移（含历史列改名的数据搬运），再AutoMigrate补齐新列和新表。
		// 顺序不能反: AutoMigrate先建出新列会让改名迁移无数据可搬
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("版本化迁移失败: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 确保系统中有管理员账户
	database.EnsureAdminExists(db, cfg)

	// 初始化Redis客户端（会话存储）
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		config.Warning("Redis连接失败，会话登录不可用: %v", err)
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg, redisClient)

	// 获取端口配置
	port := cfg.ServerPort
	if port == "" {
		port = "8080" // 默认端口
	}

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}
