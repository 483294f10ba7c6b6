// file: services/upload_service.go
package services

import (
	"HackPort/models"
	"HackPort/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// ErrInvalidSubmission 路由失败：类型未知或缺少必需的成员索引
var ErrInvalidSubmission = errors.New("invalid submission")

// FileMeta 上传文件的原始元数据（由 HTTP 层解析）
type FileMeta struct {
	OriginalName string
	ContentType  string
	Size         int64
}

// UploadResult 一次成功上传的返回值，落不落库由调用方决定
type UploadResult struct {
	FileID         string `json:"file_id"`
	WebViewLink    string `json:"web_view_link"`
	WebContentLink string `json:"web_content_link"`
	FileName       string `json:"file_name"`
	FolderPath     string `json:"folder_path"`
}

// resolveTarget 按提交类型/子类目/成员索引解析目标目录和可读路径
func resolveTarget(team *models.Team, structure *models.TeamFolderStructure,
	subType models.SubmissionType, subCategory string, memberIndex *int) (string, string, error) {

	policy := structure.CustomFolderNames

	switch subType {
	case models.SubmissionConceptNote:
		if subCategory != "" {
			if id, ok := structure.ConceptNoteSubfolders[subCategory]; ok && id != "" {
				return id, strings.Join([]string{team.TeamCode, policy.ConceptNoteFolder, subCategory}, "/"), nil
			}
		}
		// 未知子类目落到概念书根目录
		if structure.ConceptNoteFolderID == "" {
			return "", "", fmt.Errorf("%w: concept note folder missing for team %s", ErrInvalidSubmission, team.TeamCode)
		}
		return structure.ConceptNoteFolderID, strings.Join([]string{team.TeamCode, policy.ConceptNoteFolder}, "/"), nil

	case models.SubmissionFinalDeliverable:
		if structure.FinalDeliverableFolderID == "" {
			return "", "", fmt.Errorf("%w: final deliverable folder missing for team %s", ErrInvalidSubmission, team.TeamCode)
		}
		return structure.FinalDeliverableFolderID, strings.Join([]string{team.TeamCode, policy.FinalDeliverableFolder}, "/"), nil

	case models.SubmissionCertificate, models.SubmissionResume:
		if memberIndex == nil {
			return "", "", fmt.Errorf("%w: member index is required for %s", ErrInvalidSubmission, subType)
		}
		mf, ok := structure.MemberFolders[*memberIndex]
		if !ok {
			return "", "", fmt.Errorf("%w: member index %d out of range", ErrInvalidSubmission, *memberIndex)
		}
		if subType == models.SubmissionCertificate {
			return mf.CertificateFolderID, strings.Join([]string{
				team.TeamCode, policy.MemberSubmissionsFolder, mf.MemberName, policy.CertificatesFolder}, "/"), nil
		}
		return mf.ResumeFolderID, strings.Join([]string{
			team.TeamCode, policy.MemberSubmissionsFolder, mf.MemberName, policy.ResumeFolder}, "/"), nil
	}

	return "", "", fmt.Errorf("%w: unknown submission type %q", ErrInvalidSubmission, subType)
}

// RouteAndUpload 为一次提交解析目标目录、生成唯一文件名并上传，
// 返回文件引用元数据。上传成功后尽力授予公开只读权限（模拟模式下跳过，
// 失败只记日志）。
func (s *FolderService) RouteAndUpload(ctx context.Context, team *models.Team,
	structure *models.TeamFolderStructure, content io.Reader, meta FileMeta,
	subType models.SubmissionType, subCategory string, memberIndex *int) (*UploadResult, error) {

	targetID, folderPath, err := resolveTarget(team, structure, subType, subCategory, memberIndex)
	if err != nil {
		return nil, err
	}

	// 时间戳前缀保证唯一，避免覆盖已有文件
	fileName := fmt.Sprintf("%s_%d_%s", subType, time.Now().UnixMilli(), utils.SanitizeFileName(meta.OriginalName))

	// 整包读入内存：失败的首次尝试会消费掉 reader，
	// 重试必须每次都从头发送完整内容。HTTP 层已限制 25MB，缓冲安全。
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read content of %q: %w", meta.OriginalName, err)
	}

	uploaded, err := withRetry("upload "+fileName, func() (*UploadedFile, error) {
		return s.Client.UploadFile(ctx, fileName, targetID, meta.ContentType, bytes.NewReader(data))
	})
	if err != nil {
		return nil, fmt.Errorf("upload %q to %s: %w", fileName, folderPath, err)
	}

	if !s.Client.Simulated() {
		_, err := withRetry("publish "+fileName, func() (struct{}, error) {
			return struct{}{}, s.Client.CreatePermission(ctx, uploaded.ID, "reader", "anyone", "")
		})
		if err != nil {
			log.Printf("Failed to grant public read on %s: %v", uploaded.ID, err)
		}
	}

	return &UploadResult{
		FileID:         uploaded.ID,
		WebViewLink:    uploaded.WebViewLink,
		WebContentLink: uploaded.WebContentLink,
		FileName:       uploaded.Name,
		FolderPath:     folderPath,
	}, nil
}
