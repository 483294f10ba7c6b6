// file: services/upload_service_test.go
package services

import (
	"HackPort/models"
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func buildStructure(t *testing.T) (*FolderService, *SimulatedClient, *models.Team, *models.TeamFolderStructure) {
	t.Helper()
	svc, client := newTestService()
	team := testTeam()
	structure, err := svc.EnsureTeamStructure(context.Background(), team)
	assert.NoError(t, err)
	return svc, client, team, structure
}

func intPtr(i int) *int { return &i }

func TestRouteAndUploadCertificate(t *testing.T) {
	svc, _, team, structure := buildStructure(t)

	meta := FileMeta{OriginalName: "cert.pdf", ContentType: "application/pdf", Size: 2048}
	result, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader(make([]byte, 2048)), meta, models.SubmissionCertificate, "", intPtr(0))

	assert.NoError(t, err)
	assert.NotEmpty(t, result.FileID)
	assert.Regexp(t, regexp.MustCompile(`^certificate_\d+_cert\.pdf$`), result.FileName)
	assert.Equal(t, "T1/Member_Submissions/Alice Smith/Certificates", result.FolderPath)
}

func TestRouteAndUploadResume(t *testing.T) {
	svc, _, team, structure := buildStructure(t)

	meta := FileMeta{OriginalName: "bob resume.pdf", ContentType: "application/pdf"}
	result, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("resume")), meta, models.SubmissionResume, "", intPtr(1))

	assert.NoError(t, err)
	assert.Equal(t, "T1/Member_Submissions/Bob Lee/Resume_LinkedIn", result.FolderPath)
	assert.Regexp(t, regexp.MustCompile(`^resume_\d+_bobresume\.pdf$`), result.FileName)
}

func TestRouteAndUploadConceptNoteSubcategory(t *testing.T) {
	svc, _, team, structure := buildStructure(t)

	meta := FileMeta{OriginalName: "approach.md"}
	result, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("# approach")), meta, models.SubmissionConceptNote, "Solution_Approach", nil)

	assert.NoError(t, err)
	assert.Equal(t, "T1/Concept_Note/Solution_Approach", result.FolderPath)
}

func TestRouteAndUploadConceptNoteUnknownSubcategory(t *testing.T) {
	svc, _, team, structure := buildStructure(t)

	meta := FileMeta{OriginalName: "note.pdf"}
	result, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("note")), meta, models.SubmissionConceptNote, "Something_Else", nil)

	// 未知子类目落到概念书根目录
	assert.NoError(t, err)
	assert.Equal(t, "T1/Concept_Note", result.FolderPath)
}

func TestRouteAndUploadFinalDeliverable(t *testing.T) {
	svc, _, team, structure := buildStructure(t)

	meta := FileMeta{OriginalName: "release.zip"}
	result, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("zip")), meta, models.SubmissionFinalDeliverable, "", nil)

	assert.NoError(t, err)
	assert.Equal(t, "T1/Final_Deliverable", result.FolderPath)
}

func TestRouteAndUploadCertificateWithoutMemberIndex(t *testing.T) {
	svc, client, team, structure := buildStructure(t)
	before := client.UploadCount()

	_, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("x")), FileMeta{OriginalName: "cert.pdf"},
		models.SubmissionCertificate, "", nil)

	assert.ErrorIs(t, err, ErrInvalidSubmission)
	assert.Equal(t, before, client.UploadCount(), "no upload call on routing failure")
}

func TestRouteAndUploadMemberIndexOutOfRange(t *testing.T) {
	svc, client, team, structure := buildStructure(t)
	before := client.UploadCount()

	_, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("x")), FileMeta{OriginalName: "cert.pdf"},
		models.SubmissionResume, "", intPtr(5))

	assert.ErrorIs(t, err, ErrInvalidSubmission)
	assert.Equal(t, before, client.UploadCount())
}

// flakyUploadClient 前 failures 次上传返回瞬时错误，
// 并记录每次尝试实际读到的字节数
type flakyUploadClient struct {
	*SimulatedClient
	failures  int
	bytesSeen []int
}

func (f *flakyUploadClient) UploadFile(ctx context.Context, name, parentID, mimeType string, content io.Reader) (*UploadedFile, error) {
	n, _ := io.Copy(io.Discard, content)
	f.bytesSeen = append(f.bytesSeen, int(n))
	if f.failures > 0 {
		f.failures--
		return nil, &googleapi.Error{Code: 503, Message: "backend error"}
	}
	return &UploadedFile{
		ID:             "sim-file-after-retry",
		Name:           name,
		WebViewLink:    fmt.Sprintf("https://storage.simulated/view/%s", name),
		WebContentLink: fmt.Sprintf("https://storage.simulated/content/%s", name),
	}, nil
}

func TestRouteAndUploadRetryResendsFullPayload(t *testing.T) {
	svc, client, team, structure := buildStructure(t)
	flaky := &flakyUploadClient{SimulatedClient: client, failures: 1}
	svc.Client = flaky

	payload := make([]byte, 2048)
	result, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader(payload), FileMeta{OriginalName: "cert.pdf", Size: 2048},
		models.SubmissionCertificate, "", intPtr(0))

	assert.NoError(t, err)
	assert.Equal(t, "sim-file-after-retry", result.FileID)
	// 首次尝试失败后重试，两次都必须收到完整内容
	assert.Equal(t, []int{2048, 2048}, flaky.bytesSeen)
}

func TestRouteAndUploadSimulatedModeSkipsPublicGrant(t *testing.T) {
	svc, client, team, structure := buildStructure(t)

	_, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("note")), FileMeta{OriginalName: "note.pdf"},
		models.SubmissionConceptNote, "", nil)

	assert.NoError(t, err)
	assert.Equal(t, 0, client.PermissionCount(), "simulated mode must not issue permission grants")
}

func TestRouteAndUploadUnknownType(t *testing.T) {
	svc, client, team, structure := buildStructure(t)
	before := client.UploadCount()

	_, err := svc.RouteAndUpload(context.Background(), team, structure,
		bytes.NewReader([]byte("x")), FileMeta{OriginalName: "a.pdf"},
		models.SubmissionType("poster"), "", nil)

	assert.ErrorIs(t, err, ErrInvalidSubmission)
	assert.Equal(t, before, client.UploadCount())
}
