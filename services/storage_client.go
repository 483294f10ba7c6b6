// file: services/storage_client.go
package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FolderInfo 存储端返回的目录摘要
type FolderInfo struct {
	ID   string
	Name string
}

// UploadedFile 存储端返回的文件元数据
type UploadedFile struct {
	ID             string
	Name           string
	WebViewLink    string
	WebContentLink string
}

// StorageClient 抽象外部存储：真实实现走 Google Drive，
// 无凭证时由 NewStorageClient 返回内存模拟实现。
type StorageClient interface {
	// ListFolders 按名字精确查找 parentID 下未进回收站的目录，parentID 为空表示顶层
	ListFolders(ctx context.Context, name, parentID string) ([]FolderInfo, error)
	// CreateFolder 在 parentID 下新建目录，返回目录 ID
	CreateFolder(ctx context.Context, name, parentID string) (string, error)
	// CreatePermission 对文件/目录授权；principal 为空表示 anyone
	CreatePermission(ctx context.Context, fileID, role, permType, principal string) error
	// UploadFile 上传文件内容并返回元数据
	UploadFile(ctx context.Context, name, parentID, mimeType string, content io.Reader) (*UploadedFile, error)
	// Simulated 是否为离线模拟实现（模拟模式下跳过所有授权调用）
	Simulated() bool
}

// NewStorageClient 启动时调用一次：凭证可用则返回真实 Drive 客户端，
// 否则回退到模拟客户端。缺凭证不是错误，只是进入离线模式。
func NewStorageClient(credentialsFile string) StorageClient {
	if credentialsFile == "" {
		log.Println("No Drive credentials configured, using simulated storage client")
		return NewSimulatedClient()
	}
	if _, err := os.Stat(credentialsFile); err != nil {
		log.Printf("Drive credentials file not readable (%v), using simulated storage client", err)
		return NewSimulatedClient()
	}

	svc, err := drive.NewService(context.Background(),
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		log.Printf("Failed to initialize Drive service (%v), using simulated storage client", err)
		return NewSimulatedClient()
	}

	log.Println("Google Drive client initialized.")
	return &driveClient{svc: svc}
}

type driveClient struct {
	svc *drive.Service
}

// escapeQueryValue Drive 查询串里的单引号需要转义
func escapeQueryValue(s string) string {
	return strings.ReplaceAll(s, `'`, `\'`)
}

func (d *driveClient) ListFolders(ctx context.Context, name, parentID string) ([]FolderInfo, error) {
	query := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false",
		folderMimeType, escapeQueryValue(name))
	if parentID != "" {
		query += fmt.Sprintf(" and '%s' in parents", escapeQueryValue(parentID))
	}

	list, err := d.svc.Files.List().
		Context(ctx).
		Q(query).
		Fields("files(id, name)").
		PageSize(10).
		Do()
	if err != nil {
		return nil, err
	}

	folders := make([]FolderInfo, 0, len(list.Files))
	for _, f := range list.Files {
		folders = append(folders, FolderInfo{ID: f.Id, Name: f.Name})
	}
	return folders, nil
}

func (d *driveClient) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}

	created, err := d.svc.Files.Create(meta).Context(ctx).Fields("id").Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (d *driveClient) CreatePermission(ctx context.Context, fileID, role, permType, principal string) error {
	perm := &drive.Permission{
		Role: role,
		Type: permType,
	}
	if principal != "" {
		perm.EmailAddress = principal
	}
	_, err := d.svc.Permissions.Create(fileID, perm).Context(ctx).Do()
	return err
}

func (d *driveClient) UploadFile(ctx context.Context, name, parentID, mimeType string, content io.Reader) (*UploadedFile, error) {
	meta := &drive.File{
		Name:    name,
		Parents: []string{parentID},
	}

	created, err := d.svc.Files.Create(meta).
		Context(ctx).
		Media(content, googleapiContentType(mimeType)...).
		Fields("id, name, webViewLink, webContentLink").
		Do()
	if err != nil {
		return nil, err
	}

	return &UploadedFile{
		ID:             created.Id,
		Name:           created.Name,
		WebViewLink:    created.WebViewLink,
		WebContentLink: created.WebContentLink,
	}, nil
}

func (d *driveClient) Simulated() bool {
	return false
}

func googleapiContentType(mimeType string) []googleapi.MediaOption {
	if mimeType == "" {
		return nil
	}
	return []googleapi.MediaOption{googleapi.ContentType(mimeType)}
}
