// file: controllers/auth_controller.go
package controllers

import (
	"HackPort/database"
	"HackPort/dto"
	"HackPort/models"
	"HackPort/utils"

	"github.com/gin-gonic/gin"
)

// AdminLogin 管理员登录
func AdminLogin(c *gin.Context) {
	var req dto.AdminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, 2001, "邮箱或密码错误")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2001, "邮箱或密码错误")
		return
	}
	if user.Status != models.StatusActive {
		utils.Error(c, 2002, "账号已被禁用")
		return
	}

	token, err := utils.GenerateAdminToken(user)
	if err != nil {
		utils.Error(c, 5000, "生成 Token 失败")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}
