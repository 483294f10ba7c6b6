// file: services/team_lock.go
package services

import (
	"HackPort/database"
	"context"
	"log"
	"time"
)

const teamLockTTL = 60 * time.Second

// AcquireTeamLock 获取某支队伍的目录创建锁，防止两次并发首建各自建出重复目录。
// 返回释放函数和是否拿到锁。Redis 不可用时放行（无锁降级），
// 此时并发首建的竞态仍然存在，只记日志。
func AcquireTeamLock(ctx context.Context, teamCode string) (release func(), ok bool) {
	noop := func() {}
	if database.RDB == nil {
		log.Printf("Redis unavailable, building folder structure for %s without lock", teamCode)
		return noop, true
	}

	key := "folders:lock:" + teamCode
	acquired, err := database.RDB.SetNX(ctx, key, "1", teamLockTTL).Result()
	if err != nil {
		log.Printf("Failed to acquire team lock for %s (%v), proceeding without lock", teamCode, err)
		return noop, true
	}
	if !acquired {
		return noop, false
	}

	return func() {
		if err := database.RDB.Del(context.Background(), key).Err(); err != nil {
			log.Printf("Failed to release team lock for %s: %v", teamCode, err)
		}
	}, true
}
