// file: models/settings.go
package models

import "time"

// ConceptNoteSubcategories 概念书五个固定子类目的显示名。
// map 的 key 是固定的（见 services.SubcategoryKeys），这里只是自定义显示名。
type ConceptNoteSubcategories struct {
	ProblemStatement      string `json:"problem_statement"`
	SolutionApproach      string `json:"solution_approach"`
	TechnicalArchitecture string `json:"technical_architecture"`
	ImplementationPlan    string `json:"implementation_plan"`
	TeamRoles             string `json:"team_roles"`
}

// FolderNamingPolicy 建目录时使用的命名策略。
// 每个字段都必须是非空、不含路径分隔符的名字。
type FolderNamingPolicy struct {
	RootFolder               string                   `json:"root_folder"`
	ConceptNoteFolder        string                   `json:"concept_note_folder"`
	FinalDeliverableFolder   string                   `json:"final_deliverable_folder"`
	MemberSubmissionsFolder  string                   `json:"member_submissions_folder"`
	CertificatesFolder       string                   `json:"certificates_folder"`
	ResumeFolder             string                   `json:"resume_folder"`
	ConceptNoteSubcategories ConceptNoteSubcategories `json:"concept_note_subcategories"`
}

// GlobalSettings 全局设置单例行（ID 恒为 1）
type GlobalSettings struct {
	ID          uint32             `gorm:"primarykey" json:"id"`
	FolderNames FolderNamingPolicy `gorm:"serializer:json;type:json" json:"folder_names"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (GlobalSettings) TableName() string {
	return "hackport_settings"
}
