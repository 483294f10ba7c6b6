// file: config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config 集中存放所有环境配置，启动时读取一次
type Config struct {
	ServerAddr string
	MySQLDSN   string
	RedisAddr  string
	RedisPass  string

	JWTSecret string

	// Google Drive 服务账号凭证文件路径，留空则进入模拟模式
	DriveCredentialsFile string
	// 共享目标（管理员邮箱），团队根目录会授予其写权限
	ShareEmail string

	// 首次启动时自动创建的管理员账号
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

var C *Config

// Load 读取 .env 和环境变量，填充全局配置
func Load() {
	// .env 不存在不算错误，生产环境直接用环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	C = &Config{
		ServerAddr:           getEnv("SERVER_ADDR", ":8080"),
		MySQLDSN:             getEnv("MYSQL_DSN", "root:123456@tcp(localhost:3306)/hackport?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            getEnv("REDIS_PASSWORD", ""),
		JWTSecret:            getEnv("JWT_SECRET", "a-very-secure-secret-that-should-be-in-env"),
		DriveCredentialsFile: getEnv("DRIVE_CREDENTIALS_FILE", ""),
		ShareEmail:           getEnv("DRIVE_SHARE_EMAIL", ""),
		DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", "admin@hackport.local"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
