// file: models/team.go
package models

import (
	"time"
)

// 自定义队伍状态类型
type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusDisabled TeamStatus = "disabled"
)

type Team struct {
	ID       uint32 `gorm:"primarykey" json:"id"`
	TeamCode string `gorm:"size:20;unique;not null" json:"team_code"`
	TeamName string `gorm:"size:100;unique;not null" json:"team_name"`
	Email    string `gorm:"size:100" json:"email"`
	// 队伍登录用的访问码，由管理员创建/导入时生成
	AccessCode string `gorm:"size:20;not null" json:"-"`
	// 是否允许该队伍上传提交物
	FolderStructureEnabled bool                 `gorm:"default:true" json:"folder_structure_enabled"`
	FolderStructure        *TeamFolderStructure `gorm:"serializer:json;type:json" json:"folder_structure,omitempty"`
	TeamStatus             TeamStatus           `gorm:"type:enum('active','disabled');default:'active'" json:"team_status"`
	CreatedAt              time.Time            `json:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at"`
	Members                []TeamMember         `gorm:"foreignKey:TeamID" json:"members"`
}

func (Team) TableName() string {
	return "hackport_team"
}

// MemberFolderSet 单个成员的云端目录集合
type MemberFolderSet struct {
	FolderID            string `json:"folder_id"`
	CertificateFolderID string `json:"certificate_folder_id"`
	ResumeFolderID      string `json:"resume_folder_id"`
	MemberName          string `json:"member_name"`
	MemberEmail         string `json:"member_email"`
}

// TeamFolderStructure 一支队伍在云端存储上的完整目录树。
// 每支队伍只创建一次（首次登录或管理员操作时懒创建），之后只增不重建。
// CustomFolderNames 保存创建时刻的命名策略快照：
// 后续修改全局命名设置不会改动已有队伍的目录名，这是有意为之。
type TeamFolderStructure struct {
	TeamsFolderID              string                  `json:"teams_folder_id"`
	TeamFolderID               string                  `json:"team_folder_id"`
	TeamFolderLink             string                  `json:"team_folder_link"`
	ConceptNoteFolderID        string                  `json:"concept_note_folder_id"`
	ConceptNoteSubfolders      map[string]string       `json:"concept_note_subfolders"`
	FinalDeliverableFolderID   string                  `json:"final_deliverable_folder_id"`
	MembersSubmissionsFolderID string                  `json:"members_submissions_folder_id"`
	MemberFolders              map[int]MemberFolderSet `json:"member_folders"`
	CreatedAt                  time.Time               `json:"created_at"`
	CustomFolderNames          FolderNamingPolicy      `json:"custom_folder_names"`
}

// IsComplete 判断目录结构是否已经建好（调用方据此短路，避免重复走创建流程）
func (s *TeamFolderStructure) IsComplete(memberCount int) bool {
	if s == nil || s.TeamFolderID == "" {
		return false
	}
	return len(s.MemberFolders) >= memberCount
}
