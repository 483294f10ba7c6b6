// file: controllers/team_controller.go
package controllers

import (
	"HackPort/database"
	"HackPort/dto"
	"HackPort/models"
	"HackPort/services"
	"HackPort/utils"
	"context"
	"log"

	"github.com/gin-gonic/gin"
)

// provisionTeamStructure 在锁保护下建（或补齐）队伍目录树并落库。
// 结构已完整时直接短路返回，不触发任何存储调用。
func provisionTeamStructure(ctx context.Context, team *models.Team) error {
	if team.FolderStructure.IsComplete(len(team.Members)) {
		return nil
	}

	release, ok := services.AcquireTeamLock(ctx, team.TeamCode)
	if !ok {
		// 另一个请求正在建，放弃本次构建，下次访问时结构多半已就绪
		log.Printf("Folder provisioning for %s already in progress, skipping", team.TeamCode)
		return nil
	}
	defer release()

	// 拿到锁后重读，避免重复构建已写回的结构
	var fresh models.Team
	if err := database.DB.Preload("Members").First(&fresh, team.ID).Error; err == nil {
		*team = fresh
		if team.FolderStructure.IsComplete(len(team.Members)) {
			return nil
		}
	}

	structure, err := services.Folders.EnsureTeamStructure(ctx, team)
	if err != nil {
		return err
	}

	if err := database.DB.Model(&models.Team{}).Where("id = ?", team.ID).
		Update("folder_structure", structure).Error; err != nil {
		return err
	}
	team.FolderStructure = structure
	return nil
}

// TeamLogin 队伍登录。首次登录会懒创建目录结构；
// 创建失败只记日志，不阻塞登录。
func TeamLogin(c *gin.Context) {
	var req dto.TeamLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var team models.Team
	if err := database.DB.Preload("Members").
		Where("team_code = ?", req.TeamCode).First(&team).Error; err != nil {
		utils.Error(c, 2001, "队伍编号或访问码错误")
		return
	}
	if team.AccessCode != req.AccessCode {
		utils.Error(c, 2001, "队伍编号或访问码错误")
		return
	}
	if team.TeamStatus != models.TeamStatusActive {
		utils.Error(c, 2002, "队伍已被禁用")
		return
	}

	if err := provisionTeamStructure(c.Request.Context(), &team); err != nil {
		log.Printf("Folder provisioning failed for team %s on login: %v", team.TeamCode, err)
	}

	token, err := utils.GenerateTeamToken(team)
	if err != nil {
		utils.Error(c, 5000, "生成 Token 失败")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token":     token,
		"team_id":   team.ID,
		"team_code": team.TeamCode,
		"team_name": team.TeamName,
	})
}

// GetTeamProfile 队伍查看自己的信息和目录结构概要
func GetTeamProfile(c *gin.Context) {
	teamIDAny, _ := c.Get("team_id")
	teamID := teamIDAny.(uint32)

	var team models.Team
	if err := database.DB.Preload("Members").First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	resp := gin.H{
		"id":              team.ID,
		"team_code":       team.TeamCode,
		"team_name":       team.TeamName,
		"email":           team.Email,
		"uploads_enabled": team.FolderStructureEnabled,
		"members":         team.Members,
	}
	if team.FolderStructure != nil && team.FolderStructure.TeamFolderID != "" {
		resp["folder_link"] = team.FolderStructure.TeamFolderLink
		resp["folder_created_at"] = team.FolderStructure.CreatedAt
	}

	utils.Success(c, "success", resp)
}
