// file: models/team_member.go
package models

import "time"

// 自定义成员角色类型
type TeamMemberRole string

const (
	TeamRoleLeader TeamMemberRole = "leader"
	TeamRoleMember TeamMemberRole = "member"
)

// TeamMember 成员按 MemberIndex 排序，索引稳定。
// 目录路由按索引寻址而不是按姓名（姓名不唯一）。
type TeamMember struct {
	ID          uint32         `gorm:"primarykey" json:"id"`
	TeamID      uint32         `gorm:"uniqueIndex:unique_team_member;not null" json:"team_id"`
	MemberIndex int            `gorm:"uniqueIndex:unique_team_member;not null" json:"member_index"`
	FullName    string         `gorm:"size:100;not null" json:"full_name"`
	Email       string         `gorm:"size:100" json:"email"`
	Role        TeamMemberRole `gorm:"type:enum('leader','member');default:'member'" json:"role"`
	JoinedAt    time.Time      `json:"joined_at"`
}

func (TeamMember) TableName() string {
	return "hackport_team_members"
}
