// file: services/folder_policy_test.go
package services

import (
	"HackPort/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePolicyWithoutDatabase(t *testing.T) {
	// 测试进程不连库，设置存储不可用时必须退回内置默认值
	policy := ResolvePolicy()
	assert.Equal(t, DefaultFolderNamingPolicy(), policy)
}

func TestDefaultPolicyNamesAreSafe(t *testing.T) {
	d := DefaultFolderNamingPolicy()
	names := []string{
		d.RootFolder, d.ConceptNoteFolder, d.FinalDeliverableFolder,
		d.MemberSubmissionsFolder, d.CertificatesFolder, d.ResumeFolder,
	}
	for _, key := range SubcategoryKeys {
		names = append(names, subcategoryName(d, key))
	}
	for _, name := range names {
		assert.NotEmpty(t, name)
		assert.NotContains(t, name, "/")
		assert.NotContains(t, name, `\`)
	}
}

func TestMergePolicyDefaults(t *testing.T) {
	custom := models.FolderNamingPolicy{
		RootFolder:        "Hack2026",
		ConceptNoteFolder: "Idea_Docs",
	}
	merged := mergePolicyDefaults(custom, DefaultFolderNamingPolicy())

	assert.Equal(t, "Hack2026", merged.RootFolder)
	assert.Equal(t, "Idea_Docs", merged.ConceptNoteFolder)
	// 未自定义的字段补默认值
	assert.Equal(t, "Final_Deliverable", merged.FinalDeliverableFolder)
	assert.Equal(t, "Resume_LinkedIn", merged.ResumeFolder)
	assert.Equal(t, "Team_Roles", merged.ConceptNoteSubcategories.TeamRoles)
}

func TestSubcategoryNameUnknownKey(t *testing.T) {
	assert.Empty(t, subcategoryName(DefaultFolderNamingPolicy(), "Not_A_Key"))
}
