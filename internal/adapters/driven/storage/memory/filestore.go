package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

// MockURLPrefix marks every link produced by the offline file store.
// Surfaces can tell a demo link from a real Drive link by this prefix.
const MockURLPrefix = "mock://drive/"

// Ensure FileStore implements the interface.
var _ driven.FileStorageClient = (*FileStore)(nil)

// FileStore is the offline implementation of driven.FileStorageClient.
// It is injected explicitly in demo mode and in tests; uploads never
// touch the network and return deterministic placeholder links.
type FileStore struct {
	mu      sync.Mutex
	nextID  int
	folders map[string][]domain.FolderRef
	files   map[string][]domain.UploadResult
}

// NewFileStore creates a new offline file store.
func NewFileStore() *FileStore {
	return &FileStore{
		folders: make(map[string][]domain.FolderRef),
		files:   make(map[string][]domain.UploadResult),
	}
}

// CreateFolder creates a folder. Like the Drive adapter, repeated
// calls with the same name create duplicates.
func (s *FileStore) CreateFolder(_ context.Context, name string) (domain.FolderRef, error) {
	if name == "" {
		return domain.FolderRef{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createFolderLocked(name), nil
}

// EnsureFolder finds a folder by exact name, creating it when absent.
func (s *FileStore) EnsureFolder(_ context.Context, name string) (domain.FolderRef, error) {
	if name == "" {
		return domain.FolderRef{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.folders[name]; len(existing) > 0 {
		return existing[0], nil
	}
	return s.createFolderLocked(name), nil
}

// Upload records the attachment and returns a mock result with a
// deterministic placeholder URL.
func (s *FileStore) Upload(_ context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error) {
	if folder == "" || name == "" {
		return domain.UploadResult{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.folders[folder]; len(existing) == 0 {
		s.createFolderLocked(folder)
	}
	s.nextID++
	result := domain.UploadResult{
		FileID: fmt.Sprintf("file-%d", s.nextID),
		Name:   name,
		Folder: folder,
		URL:    MockURLPrefix + folder + "/" + name,
		Mock:   true,
	}
	s.files[folder] = append(s.files[folder], result)
	return result, nil
}

// Uploads returns the recorded uploads for a folder.
func (s *FileStore) Uploads(folder string) []domain.UploadResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.UploadResult(nil), s.files[folder]...)
}

// FolderCount returns how many folders carry the given name.
func (s *FileStore) FolderCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.folders[name])
}

func (s *FileStore) createFolderLocked(name string) domain.FolderRef {
	s.nextID++
	ref := domain.FolderRef{
		ID:   fmt.Sprintf("folder-%d", s.nextID),
		Name: name,
		URL:  MockURLPrefix + name,
	}
	s.folders[name] = append(s.folders[name], ref)
	return ref
}
