// file: services/folder_policy.go
package services

import (
	"HackPort/database"
	"HackPort/models"
	"errors"
	"log"

	"gorm.io/gorm"
)

// SubcategoryKeys 概念书子类目的固定 key，路由和结构体里都按这些 key 寻址。
// 自定义命名只改目录的显示名，不改 key。
var SubcategoryKeys = []string{
	"Problem_Statement",
	"Solution_Approach",
	"Technical_Architecture",
	"Implementation_Plan",
	"Team_Roles",
}

// DefaultFolderNamingPolicy 内置默认命名
func DefaultFolderNamingPolicy() models.FolderNamingPolicy {
	return models.FolderNamingPolicy{
		RootFolder:              "Hackathon_Submissions",
		ConceptNoteFolder:       "Concept_Note",
		FinalDeliverableFolder:  "Final_Deliverable",
		MemberSubmissionsFolder: "Member_Submissions",
		CertificatesFolder:      "Certificates",
		ResumeFolder:            "Resume_LinkedIn",
		ConceptNoteSubcategories: models.ConceptNoteSubcategories{
			ProblemStatement:      "Problem_Statement",
			SolutionApproach:      "Solution_Approach",
			TechnicalArchitecture: "Technical_Architecture",
			ImplementationPlan:    "Implementation_Plan",
			TeamRoles:             "Team_Roles",
		},
	}
}

// ResolvePolicy 读取全局命名设置；没有就落库默认值并返回。
// 设置表不可用时退回内存默认值——建目录不能被设置存储拖垮。
func ResolvePolicy() models.FolderNamingPolicy {
	defaults := DefaultFolderNamingPolicy()
	if database.DB == nil {
		return defaults
	}

	var settings models.GlobalSettings
	err := database.DB.First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.GlobalSettings{ID: 1, FolderNames: defaults}
		if createErr := database.DB.Create(&settings).Error; createErr != nil {
			log.Printf("Failed to persist default folder settings (%v), using in-memory defaults", createErr)
			return defaults
		}
		return defaults
	}
	if err != nil {
		log.Printf("Failed to load folder settings (%v), using in-memory defaults", err)
		return defaults
	}

	return mergePolicyDefaults(settings.FolderNames, defaults)
}

// mergePolicyDefaults 逐字段补齐空值，保证策略每个字段都非空
func mergePolicyDefaults(p, d models.FolderNamingPolicy) models.FolderNamingPolicy {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	p.RootFolder = pick(p.RootFolder, d.RootFolder)
	p.ConceptNoteFolder = pick(p.ConceptNoteFolder, d.ConceptNoteFolder)
	p.FinalDeliverableFolder = pick(p.FinalDeliverableFolder, d.FinalDeliverableFolder)
	p.MemberSubmissionsFolder = pick(p.MemberSubmissionsFolder, d.MemberSubmissionsFolder)
	p.CertificatesFolder = pick(p.CertificatesFolder, d.CertificatesFolder)
	p.ResumeFolder = pick(p.ResumeFolder, d.ResumeFolder)
	p.ConceptNoteSubcategories.ProblemStatement = pick(p.ConceptNoteSubcategories.ProblemStatement, d.ConceptNoteSubcategories.ProblemStatement)
	p.ConceptNoteSubcategories.SolutionApproach = pick(p.ConceptNoteSubcategories.SolutionApproach, d.ConceptNoteSubcategories.SolutionApproach)
	p.ConceptNoteSubcategories.TechnicalArchitecture = pick(p.ConceptNoteSubcategories.TechnicalArchitecture, d.ConceptNoteSubcategories.TechnicalArchitecture)
	p.ConceptNoteSubcategories.ImplementationPlan = pick(p.ConceptNoteSubcategories.ImplementationPlan, d.ConceptNoteSubcategories.ImplementationPlan)
	p.ConceptNoteSubcategories.TeamRoles = pick(p.ConceptNoteSubcategories.TeamRoles, d.ConceptNoteSubcategories.TeamRoles)
	return p
}

// subcategoryName key -> 该策略下的显示名
func subcategoryName(p models.FolderNamingPolicy, key string) string {
	switch key {
	case "Problem_Statement":
		return p.ConceptNoteSubcategories.ProblemStatement
	case "Solution_Approach":
		return p.ConceptNoteSubcategories.SolutionApproach
	case "Technical_Architecture":
		return p.ConceptNoteSubcategories.TechnicalArchitecture
	case "Implementation_Plan":
		return p.ConceptNoteSubcategories.ImplementationPlan
	case "Team_Roles":
		return p.ConceptNoteSubcategories.TeamRoles
	}
	return ""
}
