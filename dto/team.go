// file: dto/team.go
package dto

type TeamLoginReq struct {
	TeamCode   string `json:"team_code" binding:"required"`
	AccessCode string `json:"access_code" binding:"required"`
}

type AdminLoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TeamMemberReq struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type CreateTeamReq struct {
	TeamCode string          `json:"team_code" binding:"required,max=20"`
	TeamName string          `json:"team_name" binding:"required,max=100"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Members  []TeamMemberReq `json:"members" binding:"required,min=1,dive"`
}

type UpdateTeamUploadsReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
