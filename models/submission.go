// file: models/submission.go
package models

import (
	"time"
)

type SubmissionType string

const (
	SubmissionConceptNote      SubmissionType = "concept_note"
	SubmissionFinalDeliverable SubmissionType = "final_deliverable"
	SubmissionCertificate      SubmissionType = "certificate"
	SubmissionResume           SubmissionType = "resume"
)

// Submission 一次成功上传的落库记录。
// 路由/上传本身由 services 完成，这里只保存其返回的元数据。
type Submission struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	TeamID      uint32         `gorm:"index;not null" json:"team_id"`
	Type        SubmissionType `gorm:"type:enum('concept_note','final_deliverable','certificate','resume');not null" json:"type"`
	SubCategory string         `gorm:"size:100" json:"sub_category,omitempty"`
	MemberIndex *int           `json:"member_index,omitempty"`

	FileID         string `gorm:"size:128;not null" json:"file_id"`
	FileName       string `gorm:"size:255;not null" json:"file_name"`
	WebViewLink    string `gorm:"size:2048" json:"web_view_link"`
	WebContentLink string `gorm:"size:2048" json:"web_content_link"`
	FolderPath     string `gorm:"size:512" json:"folder_path"`

	ContentType string `gorm:"size:255" json:"content_type"`
	FileSize    uint64 `gorm:"default:0" json:"file_size"`
	SHA256      string `gorm:"size:64;not null" json:"sha256"`

	CreatedAt time.Time `json:"created_at"`
}

func (Submission) TableName() string {
	return "hackport_submission"
}
