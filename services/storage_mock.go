// file: services/storage_mock.go
package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SimulatedClient 内存模拟的存储客户端：不走网络，伪造所有 ID，
// 记录已建目录以保持 find-or-create 的幂等语义，方便无凭证联调。
type SimulatedClient struct {
	mu sync.Mutex
	// key: parentID + "/" + name
	folders     map[string]string
	uploadCalls int
	permCalls   int
}

func NewSimulatedClient() *SimulatedClient {
	return &SimulatedClient{
		folders: make(map[string]string),
	}
}

func (s *SimulatedClient) folderKey(name, parentID string) string {
	return parentID + "/" + name
}

func (s *SimulatedClient) ListFolders(ctx context.Context, name, parentID string) ([]FolderInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.folders[s.folderKey(name, parentID)]; ok {
		return []FolderInfo{{ID: id, Name: name}}, nil
	}
	return nil, nil
}

func (s *SimulatedClient) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := "sim-folder-" + strings.Replace(uuid.New().String(), "-", "", -1)[:16]
	s.folders[s.folderKey(name, parentID)] = id
	log.Printf("[simulated storage] create folder %q under %q -> %s", name, parentID, id)
	return id, nil
}

func (s *SimulatedClient) CreatePermission(ctx context.Context, fileID, role, permType, principal string) error {
	s.mu.Lock()
	s.permCalls++
	s.mu.Unlock()
	log.Printf("[simulated storage] grant %s/%s on %s to %q", permType, role, fileID, principal)
	return nil
}

func (s *SimulatedClient) UploadFile(ctx context.Context, name, parentID, mimeType string, content io.Reader) (*UploadedFile, error) {
	// 读掉内容，模拟真实上传的消费行为
	n, _ := io.Copy(io.Discard, content)

	s.mu.Lock()
	s.uploadCalls++
	s.mu.Unlock()

	id := "sim-file-" + strings.Replace(uuid.New().String(), "-", "", -1)[:16]
	log.Printf("[simulated storage] upload %q (%d bytes) into %q -> %s", name, n, parentID, id)
	return &UploadedFile{
		ID:             id,
		Name:           name,
		WebViewLink:    fmt.Sprintf("https://storage.simulated/view/%s", id),
		WebContentLink: fmt.Sprintf("https://storage.simulated/content/%s", id),
	}, nil
}

func (s *SimulatedClient) Simulated() bool {
	return true
}

// FolderCount 测试辅助：当前已建目录数量
func (s *SimulatedClient) FolderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.folders)
}

// UploadCount 测试辅助：累计上传调用次数
func (s *SimulatedClient) UploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadCalls
}

// PermissionCount 测试辅助：累计授权调用次数
func (s *SimulatedClient) PermissionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permCalls
}
