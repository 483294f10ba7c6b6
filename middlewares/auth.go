// file: middlewares/auth.go
package middlewares

import (
	"HackPort/models"
	"HackPort/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func parseBearerToken(c *gin.Context) (*utils.Claims, bool) {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		utils.Error(c, 4001, "请求头中 Authorization 为空")
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		utils.Error(c, 4002, "Authorization 格式有误")
		return nil, false
	}

	claims, err := utils.ParseToken(parts[1])
	if err != nil {
		utils.Error(c, 4003, "无效的 Token")
		return nil, false
	}
	return claims, true
}

// AdminAuthMiddleware 校验管理员会话
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c)
		if !ok {
			c.Abort()
			return
		}
		if claims.AccountType != "admin" {
			utils.Error(c, 4003, "需要管理员身份")
			c.Abort()
			return
		}
		c.Set("user_id", claims.AccountID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RoleAuthMiddleware 校验管理员角色权限
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("user_role")
		if !exists {
			utils.Error(c, 5001, "无法获取用户角色信息")
			c.Abort()
			return
		}

		role := roleAny.(models.UserRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		// root_admin 拥有所有权限
		if role == models.RoleRootAdmin {
			hasPermission = true
		}

		if !hasPermission {
			c.JSON(http.StatusForbidden, gin.H{"code": 4003, "msg": "权限不足"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// TeamAuthMiddleware 校验队伍会话
func TeamAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c)
		if !ok {
			c.Abort()
			return
		}
		if claims.AccountType != "team" {
			utils.Error(c, 4003, "需要队伍身份")
			c.Abort()
			return
		}
		c.Set("team_id", claims.AccountID)
		c.Set("team_code", claims.TeamCode)
		c.Next()
	}
}
