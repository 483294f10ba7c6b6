// file: database/redis.go
package database

import (
	"HackPort/config"
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// InitRedis 初始化 Redis 连接。
// 连接失败不会终止进程：Redis 只承担团队目录创建锁，
// 不可用时服务降级为无锁模式（见 services/team_lock.go）。
func InitRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.C.RedisAddr,
		Password: config.C.RedisPass,
		DB:       0,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Printf("Warning: failed to connect to Redis (%v), team provisioning lock disabled", err)
		RDB = nil
		return
	}

	log.Println("Redis connection successfully established.")
}
