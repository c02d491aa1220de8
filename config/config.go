package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBPath          string
	DBMigrationMode string // 数据库迁移模式: "auto"(默认), "drop"(删除重建，仅限开发)

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// JWT Authentication
	JWTSecretKey string

	// Session
	SessionTTLDays int // 会话滑动过期天数

	// Admin bootstrap
	DefaultAdminName     string
	DefaultAdminPassword string

	// QR 登录链接的基础URL，例如 http://192.168.1.10:8080
	QRBaseURL string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	envType := getEnv("ENV_TYPE", "LOCAL")

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_DAYS", "30"))
	if err != nil || sessionTTL <= 0 {
		fmt.Printf("Warning: invalid SESSION_TTL_DAYS, defaulting to 30\n")
		sessionTTL = 30
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		EnvType: envType,

		// Database config
		DBPath:          getEnv("DB_PATH", "care.db"),
		DBMigrationMode: getEnv("DB_MIGRATION_MODE", "auto"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "8080"),

		// Redis config
		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisDB:   redisDB,

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "carelog-secret-key"),

		// Session config
		SessionTTLDays: sessionTTL,

		// Admin bootstrap
		DefaultAdminName:     getEnv("DEFAULT_ADMIN_NAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),

		// QR config
		QRBaseURL: getEnv("QR_BASE_URL", "http://localhost:8080"),
	}
}

// GetConfig returns the singleton config instance
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN 返回sqlite数据库连接字符串
func (c *Config) GetDSN() string {
	// 开启外键约束并设置繁忙等待，级联删除依赖外键约束生效
	return fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=10000", c.DBPath)
}

// GetRedisAddr 返回Redis连接地址
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
