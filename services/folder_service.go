// file: services/folder_service.go
package services

import (
	"HackPort/models"
	"HackPort/utils"
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// FolderService 目录编排核心：find-or-create 原语加在其上的整树构建。
// 客户端与共享对象在启动时注入一次，之后不再切换。
type FolderService struct {
	Client StorageClient
	// 团队根目录要授予写权限的管理员邮箱，空则不共享
	SharePrincipal string
}

var Folders *FolderService

// InitFolderService 启动时调用一次
func InitFolderService(client StorageClient, sharePrincipal string) {
	Folders = &FolderService{Client: client, SharePrincipal: sharePrincipal}
}

// FindOrCreateFolder 幂等取得目录：同名目录已存在则复用，否则新建。
// share 为真时把目录共享给 SharePrincipal；共享失败只记日志不影响结果。
// 所有存储调用都包在重试里。
func (s *FolderService) FindOrCreateFolder(ctx context.Context, name, parentID string, share bool) (string, error) {
	found, err := withRetry("list folder "+name, func() ([]FolderInfo, error) {
		return s.Client.ListFolders(ctx, name, parentID)
	})
	if err != nil {
		return "", fmt.Errorf("search folder %q under %q: %w", name, parentID, err)
	}

	var folderID string
	if len(found) > 0 {
		folderID = found[0].ID
	} else {
		folderID, err = withRetry("create folder "+name, func() (string, error) {
			return s.Client.CreateFolder(ctx, name, parentID)
		})
		if err != nil {
			return "", fmt.Errorf("create folder %q under %q: %w", name, parentID, err)
		}
	}

	if share && !s.Client.Simulated() && s.SharePrincipal != "" {
		_, err := withRetry("share folder "+name, func() (struct{}, error) {
			return struct{}{}, s.Client.CreatePermission(ctx, folderID, "writer", "user", s.SharePrincipal)
		})
		if err != nil {
			// 目录已经建好可用，共享失败降级处理
			log.Printf("Failed to share folder %q with %s: %v", name, s.SharePrincipal, err)
		}
	}

	return folderID, nil
}

// EnsureTeamStructure 构建（或补齐）一支队伍的完整目录树并返回结构描述。
// 已有结构时沿用其创建时刻的命名快照，全程幂等；任何一步失败整体报错，
// 是否持久化由调用方决定。
func (s *FolderService) EnsureTeamStructure(ctx context.Context, team *models.Team) (*models.TeamFolderStructure, error) {
	policy := ResolvePolicy()
	createdAt := time.Now()
	if team.FolderStructure != nil && team.FolderStructure.TeamFolderID != "" {
		// 命名策略在结构首建时冻结，后续扩建沿用快照
		policy = mergePolicyDefaults(team.FolderStructure.CustomFolderNames, DefaultFolderNamingPolicy())
		createdAt = team.FolderStructure.CreatedAt
	}

	rootID, err := s.FindOrCreateFolder(ctx, policy.RootFolder, "", true)
	if err != nil {
		return nil, fmt.Errorf("ensure root folder: %w", err)
	}

	teamFolderName := fmt.Sprintf("%s_%s", team.TeamCode, utils.SanitizeName(team.TeamName))
	teamFolderID, err := s.FindOrCreateFolder(ctx, teamFolderName, rootID, true)
	if err != nil {
		return nil, fmt.Errorf("ensure team folder for %s: %w", team.TeamCode, err)
	}

	// 共享从父目录级联，子目录无需单独授权
	conceptNoteID, err := s.FindOrCreateFolder(ctx, policy.ConceptNoteFolder, teamFolderID, false)
	if err != nil {
		return nil, fmt.Errorf("ensure concept note folder for %s: %w", team.TeamCode, err)
	}
	finalDeliverableID, err := s.FindOrCreateFolder(ctx, policy.FinalDeliverableFolder, teamFolderID, false)
	if err != nil {
		return nil, fmt.Errorf("ensure final deliverable folder for %s: %w", team.TeamCode, err)
	}
	memberSubmissionsID, err := s.FindOrCreateFolder(ctx, policy.MemberSubmissionsFolder, teamFolderID, false)
	if err != nil {
		return nil, fmt.Errorf("ensure member submissions folder for %s: %w", team.TeamCode, err)
	}

	subfolders := make(map[string]string, len(SubcategoryKeys))
	for _, key := range SubcategoryKeys {
		id, err := s.FindOrCreateFolder(ctx, subcategoryName(policy, key), conceptNoteID, false)
		if err != nil {
			return nil, fmt.Errorf("ensure concept note subcategory %s for %s: %w", key, team.TeamCode, err)
		}
		subfolders[key] = id
	}

	// 成员按索引排序，目录命名依赖稳定索引而不是姓名
	members := make([]models.TeamMember, len(team.Members))
	copy(members, team.Members)
	sort.Slice(members, func(i, j int) bool { return members[i].MemberIndex < members[j].MemberIndex })

	memberFolders := make(map[int]models.MemberFolderSet, len(members))
	for _, m := range members {
		memberFolderName := fmt.Sprintf("Member_%d_%s", m.MemberIndex+1, utils.SanitizeName(m.FullName))
		memberFolderID, err := s.FindOrCreateFolder(ctx, memberFolderName, memberSubmissionsID, false)
		if err != nil {
			return nil, fmt.Errorf("ensure folder for member %d of %s: %w", m.MemberIndex, team.TeamCode, err)
		}
		certID, err := s.FindOrCreateFolder(ctx, policy.CertificatesFolder, memberFolderID, false)
		if err != nil {
			return nil, fmt.Errorf("ensure certificates folder for member %d of %s: %w", m.MemberIndex, team.TeamCode, err)
		}
		resumeID, err := s.FindOrCreateFolder(ctx, policy.ResumeFolder, memberFolderID, false)
		if err != nil {
			return nil, fmt.Errorf("ensure resume folder for member %d of %s: %w", m.MemberIndex, team.TeamCode, err)
		}
		memberFolders[m.MemberIndex] = models.MemberFolderSet{
			FolderID:            memberFolderID,
			CertificateFolderID: certID,
			ResumeFolderID:      resumeID,
			MemberName:          m.FullName,
			MemberEmail:         m.Email,
		}
	}

	return &models.TeamFolderStructure{
		TeamsFolderID:              rootID,
		TeamFolderID:               teamFolderID,
		TeamFolderLink:             "https://drive.google.com/drive/folders/" + teamFolderID,
		ConceptNoteFolderID:        conceptNoteID,
		ConceptNoteSubfolders:      subfolders,
		FinalDeliverableFolderID:   finalDeliverableID,
		MembersSubmissionsFolderID: memberSubmissionsID,
		MemberFolders:              memberFolders,
		CreatedAt:                  createdAt,
		CustomFolderNames:          policy,
	}, nil
}
