// file: dto/settings.go
package dto

type SubcategoryNamesReq struct {
	ProblemStatement      string `json:"problem_statement"`
	SolutionApproach      string `json:"solution_approach"`
	TechnicalArchitecture string `json:"technical_architecture"`
	ImplementationPlan    string `json:"implementation_plan"`
	TeamRoles             string `json:"team_roles"`
}

// UpdateFolderSettingsReq 全字段可选，空字段保持默认值
type UpdateFolderSettingsReq struct {
	RootFolder               string              `json:"root_folder"`
	ConceptNoteFolder        string              `json:"concept_note_folder"`
	FinalDeliverableFolder   string              `json:"final_deliverable_folder"`
	MemberSubmissionsFolder  string              `json:"member_submissions_folder"`
	CertificatesFolder       string              `json:"certificates_folder"`
	ResumeFolder             string              `json:"resume_folder"`
	ConceptNoteSubcategories SubcategoryNamesReq `json:"concept_note_subcategories"`
}
