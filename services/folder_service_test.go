// file: services/folder_service_test.go
package services

import (
	"HackPort/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService() (*FolderService, *SimulatedClient) {
	client := NewSimulatedClient()
	return &FolderService{Client: client, SharePrincipal: "admin@example.com"}, client
}

func testTeam() *models.Team {
	return &models.Team{
		ID:       1,
		TeamCode: "T1",
		TeamName: "Alpha Team",
		Members: []models.TeamMember{
			{TeamID: 1, MemberIndex: 0, FullName: "Alice Smith", Email: "alice@example.com"},
			{TeamID: 1, MemberIndex: 1, FullName: "Bob Lee", Email: "bob@example.com"},
		},
	}
}

func TestFindOrCreateFolderIdempotent(t *testing.T) {
	svc, client := newTestService()
	ctx := context.Background()

	first, err := svc.FindOrCreateFolder(ctx, "Concept_Note", "parent-1", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := svc.FindOrCreateFolder(ctx, "Concept_Note", "parent-1", false)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "repeated calls must converge to one folder")
	assert.Equal(t, 1, client.FolderCount())
}

func TestFindOrCreateFolderDistinctParents(t *testing.T) {
	svc, client := newTestService()
	ctx := context.Background()

	a, err := svc.FindOrCreateFolder(ctx, "Certificates", "member-1", false)
	assert.NoError(t, err)
	b, err := svc.FindOrCreateFolder(ctx, "Certificates", "member-2", false)
	assert.NoError(t, err)

	assert.NotEqual(t, a, b, "same name under different parents are different folders")
	assert.Equal(t, 2, client.FolderCount())
}

func TestEnsureTeamStructureFullTree(t *testing.T) {
	svc, _ := newTestService()
	team := testTeam()

	structure, err := svc.EnsureTeamStructure(context.Background(), team)
	assert.NoError(t, err)

	assert.NotEmpty(t, structure.TeamsFolderID)
	assert.NotEmpty(t, structure.TeamFolderID)
	assert.NotEmpty(t, structure.ConceptNoteFolderID)
	assert.NotEmpty(t, structure.FinalDeliverableFolderID)
	assert.NotEmpty(t, structure.MembersSubmissionsFolderID)
	assert.Equal(t, "https://drive.google.com/drive/folders/"+structure.TeamFolderID, structure.TeamFolderLink)

	assert.Len(t, structure.ConceptNoteSubfolders, 5)
	for _, key := range SubcategoryKeys {
		assert.NotEmpty(t, structure.ConceptNoteSubfolders[key], "missing subfolder %s", key)
	}

	assert.Len(t, structure.MemberFolders, 2)
	for idx, mf := range structure.MemberFolders {
		assert.NotEmpty(t, mf.FolderID, "member %d", idx)
		assert.NotEmpty(t, mf.CertificateFolderID, "member %d", idx)
		assert.NotEmpty(t, mf.ResumeFolderID, "member %d", idx)
	}
	assert.Equal(t, "Alice Smith", structure.MemberFolders[0].MemberName)
	assert.Equal(t, "Bob Lee", structure.MemberFolders[1].MemberName)

	// 命名策略快照随结构冻结
	assert.Equal(t, DefaultFolderNamingPolicy(), structure.CustomFolderNames)
	assert.False(t, structure.CreatedAt.IsZero())
}

func TestEnsureTeamStructureSimulatedModeSkipsSharing(t *testing.T) {
	svc, client := newTestService()

	_, err := svc.EnsureTeamStructure(context.Background(), testTeam())
	assert.NoError(t, err)

	// 根目录和队伍目录带 share 标记，但模拟模式下不发授权调用
	assert.Equal(t, 0, client.PermissionCount())
}

func TestEnsureTeamStructureDeterministic(t *testing.T) {
	svc, client := newTestService()
	team := testTeam()
	ctx := context.Background()

	first, err := svc.EnsureTeamStructure(ctx, team)
	assert.NoError(t, err)
	countAfterFirst := client.FolderCount()

	team.FolderStructure = first
	second, err := svc.EnsureTeamStructure(ctx, team)
	assert.NoError(t, err)

	assert.Equal(t, first.TeamFolderID, second.TeamFolderID)
	assert.Equal(t, first.ConceptNoteSubfolders, second.ConceptNoteSubfolders)
	assert.Equal(t, first.MemberFolders, second.MemberFolders)
	assert.Equal(t, first.CreatedAt, second.CreatedAt, "rebuild keeps the original creation time")
	assert.Equal(t, countAfterFirst, client.FolderCount(), "rebuild must not create new folders")
}

func TestEnsureTeamStructureExtendsForNewMember(t *testing.T) {
	svc, _ := newTestService()
	team := testTeam()
	ctx := context.Background()

	first, err := svc.EnsureTeamStructure(ctx, team)
	assert.NoError(t, err)

	team.FolderStructure = first
	team.Members = append(team.Members, models.TeamMember{
		TeamID: 1, MemberIndex: 2, FullName: "Carol Wu",
	})

	second, err := svc.EnsureTeamStructure(ctx, team)
	assert.NoError(t, err)

	assert.Len(t, second.MemberFolders, 3)
	assert.Equal(t, first.MemberFolders[0], second.MemberFolders[0], "existing member folders are reused")
	assert.Equal(t, first.MemberFolders[1], second.MemberFolders[1])
	assert.NotEmpty(t, second.MemberFolders[2].CertificateFolderID)
}

func TestEnsureTeamStructureSanitizesNames(t *testing.T) {
	svc, client := newTestService()
	team := &models.Team{
		ID:       2,
		TeamCode: "T2",
		TeamName: "Team Rocket! (2025)",
		Members: []models.TeamMember{
			{TeamID: 2, MemberIndex: 0, FullName: "Dana O'Neil"},
		},
	}

	structure, err := svc.EnsureTeamStructure(context.Background(), team)
	assert.NoError(t, err)

	// 队伍目录名：{teamCode}_{清洗后的队名}
	folders, err := client.ListFolders(context.Background(), "T2_TeamRocket2025", structure.TeamsFolderID)
	assert.NoError(t, err)
	assert.Len(t, folders, 1)
	assert.Equal(t, structure.TeamFolderID, folders[0].ID)

	members, err := client.ListFolders(context.Background(), "Member_1_DanaONeil", structure.MembersSubmissionsFolderID)
	assert.NoError(t, err)
	assert.Len(t, members, 1)
}
