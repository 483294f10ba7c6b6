// file: controllers/admin_team_controller.go
package controllers

import (
	"HackPort/database"
	"HackPort/dto"
	"HackPort/models"
	"HackPort/utils"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AdminGetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var teams []models.Team
	var total int64

	db := database.DB.Model(&models.Team{}).Preload("Members")

	if search != "" {
		db = db.Where("team_name LIKE ? OR team_code LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	db.Count(&total)
	db.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&teams)

	// 列表页只需要概要信息
	type TeamInfo struct {
		ID             uint32            `json:"id"`
		TeamCode       string            `json:"team_code"`
		TeamName       string            `json:"team_name"`
		MemberCount    int               `json:"member_count"`
		UploadsEnabled bool              `json:"uploads_enabled"`
		TeamStatus     models.TeamStatus `json:"team_status"`
		Provisioned    bool              `json:"provisioned"`
		FolderLink     string            `json:"folder_link,omitempty"`
	}

	// 预分配，空列表序列化成 [] 而不是 null
	resultTeams := make([]TeamInfo, 0, len(teams))
	for _, team := range teams {
		info := TeamInfo{
			ID:             team.ID,
			TeamCode:       team.TeamCode,
			TeamName:       team.TeamName,
			MemberCount:    len(team.Members),
			UploadsEnabled: team.FolderStructureEnabled,
			TeamStatus:     team.TeamStatus,
			Provisioned:    team.FolderStructure.IsComplete(len(team.Members)),
		}
		if team.FolderStructure != nil {
			info.FolderLink = team.FolderStructure.TeamFolderLink
		}
		resultTeams = append(resultTeams, info)
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"teams": resultTeams,
	})
}

// createTeamWithMembers 建队伍 + 成员（索引按传入顺序分配），一个事务内完成
func createTeamWithMembers(req dto.CreateTeamReq) (*models.Team, error) {
	newTeam := models.Team{
		TeamCode:   strings.TrimSpace(req.TeamCode),
		TeamName:   strings.TrimSpace(req.TeamName),
		Email:      req.Email,
		AccessCode: utils.GenerateAccessCode(12),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newTeam).Error; err != nil {
			return err
		}
		for i, m := range req.Members {
			role := models.TeamRoleMember
			if i == 0 {
				role = models.TeamRoleLeader
			}
			member := models.TeamMember{
				TeamID:      newTeam.ID,
				MemberIndex: i,
				FullName:    strings.TrimSpace(m.FullName),
				Email:       m.Email,
				Role:        role,
				JoinedAt:    time.Now(),
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
			newTeam.Members = append(newTeam.Members, member)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &newTeam, nil
}

func AdminCreateTeam(c *gin.Context) {
	var req dto.CreateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.Team
	if err := database.DB.Where("team_code = ? OR team_name = ?", req.TeamCode, req.TeamName).
		First(&existing).Error; err == nil {
		utils.Error(c, 3001, "队伍编号或名称已存在")
		return
	}

	team, err := createTeamWithMembers(req)
	if err != nil {
		utils.Error(c, 5000, "创建队伍失败: "+err.Error())
		return
	}

	utils.Success(c, "Team created successfully", gin.H{
		"id":          team.ID,
		"team_code":   team.TeamCode,
		"team_name":   team.TeamName,
		"access_code": team.AccessCode,
	})
}

// AdminImportTeams CSV 批量导入。
// 每行格式：team_code,team_name,email,member1_name,member1_email[,member2_name,member2_email...]
func AdminImportTeams(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 1001, "获取文件失败")
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.Error(c, 5000, "打开文件失败")
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	type importResult struct {
		Line       int    `json:"line"`
		TeamCode   string `json:"team_code"`
		AccessCode string `json:"access_code,omitempty"`
		Error      string `json:"error,omitempty"`
	}
	var results []importResult
	imported := 0

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			results = append(results, importResult{Line: line, Error: "CSV 解析失败: " + err.Error()})
			continue
		}
		// 跳过表头
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "team_code") {
			continue
		}
		if len(record) < 5 {
			results = append(results, importResult{Line: line, Error: "字段不足（至少需要一名成员）"})
			continue
		}

		req := dto.CreateTeamReq{
			TeamCode: strings.TrimSpace(record[0]),
			TeamName: strings.TrimSpace(record[1]),
			Email:    strings.TrimSpace(record[2]),
		}
		for i := 3; i+1 < len(record); i += 2 {
			name := strings.TrimSpace(record[i])
			if name == "" {
				continue
			}
			req.Members = append(req.Members, dto.TeamMemberReq{
				FullName: name,
				Email:    strings.TrimSpace(record[i+1]),
			})
		}
		if req.TeamCode == "" || req.TeamName == "" || len(req.Members) == 0 {
			results = append(results, importResult{Line: line, TeamCode: req.TeamCode, Error: "缺少队伍编号、名称或成员"})
			continue
		}

		var existing models.Team
		if err := database.DB.Where("team_code = ? OR team_name = ?", req.TeamCode, req.TeamName).
			First(&existing).Error; err == nil {
			results = append(results, importResult{Line: line, TeamCode: req.TeamCode, Error: "队伍已存在"})
			continue
		}

		team, err := createTeamWithMembers(req)
		if err != nil {
			results = append(results, importResult{Line: line, TeamCode: req.TeamCode, Error: err.Error()})
			continue
		}
		imported++
		results = append(results, importResult{Line: line, TeamCode: team.TeamCode, AccessCode: team.AccessCode})
	}

	utils.Success(c, fmt.Sprintf("Imported %d teams", imported), gin.H{
		"imported": imported,
		"results":  results,
	})
}

// AdminProvisionTeamFolders 管理员手动创建/补齐某队伍的目录结构
func AdminProvisionTeamFolders(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.Preload("Members").First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	if err := provisionTeamStructure(c.Request.Context(), &team); err != nil {
		utils.Error(c, 5000, "创建目录结构失败: "+err.Error())
		return
	}

	utils.Success(c, "Folder structure ensured", gin.H{
		"team_code":   team.TeamCode,
		"folder_link": team.FolderStructure.TeamFolderLink,
		"provisioned": team.FolderStructure.IsComplete(len(team.Members)),
	})
}

// AdminUpdateTeamUploads 开关某队伍的上传权限
func AdminUpdateTeamUploads(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var req dto.UpdateTeamUploadsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	if err := database.DB.Model(&team).Update("folder_structure_enabled", *req.Enabled).Error; err != nil {
		utils.Error(c, 5000, "更新队伍状态失败")
		return
	}

	utils.Success(c, "Team uploads updated successfully", gin.H{
		"team_id": team.ID,
		"enabled": *req.Enabled,
	})
}

// AdminResetAccessCode 重置队伍访问码
func AdminResetAccessCode(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	newCode := utils.GenerateAccessCode(12)
	if err := database.DB.Model(&team).Update("access_code", newCode).Error; err != nil {
		utils.Error(c, 5000, "重置访问码失败")
		return
	}

	utils.Success(c, "Access code reset successfully", gin.H{
		"team_id":     team.ID,
		"access_code": newCode,
	})
}

func AdminDeleteTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	// 管理员删除是硬删除，GORM的级联删除会处理成员关系
	if err := database.DB.Select("Members").Delete(&models.Team{ID: uint32(teamID)}).Error; err != nil {
		utils.Error(c, 5000, "删除队伍失败")
		return
	}

	utils.Success(c, "Team deleted successfully by admin", nil)
}
