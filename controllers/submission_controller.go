// file: controllers/submission_controller.go
package controllers

import (
	"HackPort/database"
	"HackPort/models"
	"HackPort/services"
	"HackPort/utils"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxSubmissionSize = 25 << 20 // 25MB

var allowedExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".ppt": true, ".pptx": true, ".zip": true,
	".png": true, ".jpg": true, ".jpeg": true,
	".md": true, ".txt": true,
}

var submissionTypes = map[string]models.SubmissionType{
	"concept_note":      models.SubmissionConceptNote,
	"final_deliverable": models.SubmissionFinalDeliverable,
	"certificate":       models.SubmissionCertificate,
	"resume":            models.SubmissionResume,
}

// UploadSubmission 队伍上传提交物。
// 表单字段：file、submission_type、sub_category（可选）、member_index（可选）
func UploadSubmission(c *gin.Context) {
	teamIDAny, _ := c.Get("team_id")
	teamID := teamIDAny.(uint32)

	var team models.Team
	if err := database.DB.Preload("Members").First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}
	if !team.FolderStructureEnabled {
		utils.Error(c, 3002, "该队伍的上传功能已关闭")
		return
	}

	subType, ok := submissionTypes[c.PostForm("submission_type")]
	if !ok {
		utils.Error(c, 1001, "无效的提交类型")
		return
	}
	subCategory := c.PostForm("sub_category")

	var memberIndex *int
	if v := c.PostForm("member_index"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			utils.Error(c, 1001, "无效的成员索引")
			return
		}
		memberIndex = &idx
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 1001, "获取文件失败")
		return
	}
	if file.Size > maxSubmissionSize {
		utils.Error(c, 1003, "文件超过 25MB 限制")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		utils.Error(c, 1003, "不支持的文件类型: "+ext)
		return
	}

	// 结构缺失或成员有新增时先补齐目录树
	if err := provisionTeamStructure(c.Request.Context(), &team); err != nil {
		utils.Error(c, 5000, "创建目录结构失败: "+err.Error())
		return
	}
	if !team.FolderStructure.IsComplete(len(team.Members)) {
		utils.Error(c, 5000, "目录结构尚未就绪，请稍后重试")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.Error(c, 5000, "打开文件失败")
		return
	}
	defer src.Close()

	// 边上传边计算 SHA256
	hasher := sha256.New()
	reader := io.TeeReader(src, hasher)

	meta := services.FileMeta{
		OriginalName: file.Filename,
		ContentType:  file.Header.Get("Content-Type"),
		Size:         file.Size,
	}

	result, err := services.Folders.RouteAndUpload(c.Request.Context(), &team,
		team.FolderStructure, reader, meta, subType, subCategory, memberIndex)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSubmission) {
			utils.Error(c, 1004, "无法路由的提交: "+err.Error())
			return
		}
		utils.Error(c, 5000, "上传失败: "+err.Error())
		return
	}

	submission := models.Submission{
		TeamID:         team.ID,
		Type:           subType,
		SubCategory:    subCategory,
		MemberIndex:    memberIndex,
		FileID:         result.FileID,
		FileName:       result.FileName,
		WebViewLink:    result.WebViewLink,
		WebContentLink: result.WebContentLink,
		FolderPath:     result.FolderPath,
		ContentType:    meta.ContentType,
		FileSize:       uint64(file.Size),
		SHA256:         hex.EncodeToString(hasher.Sum(nil)),
	}
	if err := database.DB.Create(&submission).Error; err != nil {
		utils.Error(c, 5000, "保存提交记录失败: "+err.Error())
		return
	}

	utils.Success(c, "Submission uploaded successfully", gin.H{
		"submission_id":    submission.ID,
		"file_id":          result.FileID,
		"file_name":        result.FileName,
		"folder_path":      result.FolderPath,
		"web_view_link":    result.WebViewLink,
		"web_content_link": result.WebContentLink,
	})
}

// ListMySubmissions 队伍查看自己的提交记录
func ListMySubmissions(c *gin.Context) {
	teamIDAny, _ := c.Get("team_id")
	teamID := teamIDAny.(uint32)

	var submissions []models.Submission
	if err := database.DB.Where("team_id = ?", teamID).
		Order("id desc").Find(&submissions).Error; err != nil {
		utils.Error(c, 5000, "查询提交记录失败")
		return
	}

	utils.Success(c, "success", submissions)
}

// AdminListSubmissions 管理员按队伍/类型过滤提交记录
func AdminListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	db := database.DB.Model(&models.Submission{})
	if v := c.Query("team_id"); v != "" {
		db = db.Where("team_id = ?", v)
	}
	if v := c.Query("type"); v != "" {
		db = db.Where("type = ?", v)
	}

	var total int64
	var submissions []models.Submission
	db.Count(&total)
	db.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&submissions)

	utils.Success(c, "success", gin.H{
		"total":       total,
		"submissions": submissions,
	})
}
