// file: controllers/settings_controller.go
package controllers

import (
	"HackPort/database"
	"HackPort/dto"
	"HackPort/models"
	"HackPort/services"
	"HackPort/utils"

	"github.com/gin-gonic/gin"
)

// GetFolderSettings 查看当前全局目录命名策略
func GetFolderSettings(c *gin.Context) {
	policy := services.ResolvePolicy()
	utils.Success(c, "success", gin.H{
		"folder_names": policy,
		// 提醒：已建好的队伍目录沿用创建时的命名快照，修改只影响之后创建的队伍
		"note": "Existing team folders keep the naming snapshot taken at creation time",
	})
}

// UpdateFolderSettings 更新全局目录命名策略。
// 空字段回落到默认名；所有名字必须不含路径分隔符。
func UpdateFolderSettings(c *gin.Context) {
	var req dto.UpdateFolderSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	names := []string{
		req.RootFolder, req.ConceptNoteFolder, req.FinalDeliverableFolder,
		req.MemberSubmissionsFolder, req.CertificatesFolder, req.ResumeFolder,
		req.ConceptNoteSubcategories.ProblemStatement,
		req.ConceptNoteSubcategories.SolutionApproach,
		req.ConceptNoteSubcategories.TechnicalArchitecture,
		req.ConceptNoteSubcategories.ImplementationPlan,
		req.ConceptNoteSubcategories.TeamRoles,
	}
	for _, name := range names {
		if name != "" && !utils.IsNameSafe(name) {
			utils.Error(c, 1003, "目录名不能包含路径分隔符: "+name)
			return
		}
	}

	policy := models.FolderNamingPolicy{
		RootFolder:              req.RootFolder,
		ConceptNoteFolder:       req.ConceptNoteFolder,
		FinalDeliverableFolder:  req.FinalDeliverableFolder,
		MemberSubmissionsFolder: req.MemberSubmissionsFolder,
		CertificatesFolder:      req.CertificatesFolder,
		ResumeFolder:            req.ResumeFolder,
		ConceptNoteSubcategories: models.ConceptNoteSubcategories{
			ProblemStatement:      req.ConceptNoteSubcategories.ProblemStatement,
			SolutionApproach:      req.ConceptNoteSubcategories.SolutionApproach,
			TechnicalArchitecture: req.ConceptNoteSubcategories.TechnicalArchitecture,
			ImplementationPlan:    req.ConceptNoteSubcategories.ImplementationPlan,
			TeamRoles:             req.ConceptNoteSubcategories.TeamRoles,
		},
	}

	settings := models.GlobalSettings{ID: 1, FolderNames: policy}
	if err := database.DB.Save(&settings).Error; err != nil {
		utils.Error(c, 5000, "保存设置失败: "+err.Error())
		return
	}

	utils.Success(c, "Folder settings updated successfully", gin.H{
		"folder_names": services.ResolvePolicy(),
	})
}
