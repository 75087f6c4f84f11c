package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// Ensure StorageService implements the interface.
var _ driving.StorageService = (*StorageService)(nil)

// StorageService provisions project folders and uploads attachments.
// Whether files land on Drive or in the offline store depends on the
// injected client; the service behaves identically for both.
type StorageService struct {
	files driven.FileStorageClient
}

// NewStorageService creates a new storage service.
func NewStorageService(files driven.FileStorageClient) *StorageService {
	return &StorageService{
		files: files,
	}
}

// CreateFolder creates a folder for the named project.
// Repeated calls create duplicate folders; only Upload reuses.
func (s *StorageService) CreateFolder(ctx context.Context, name string) (domain.FolderRef, error) {
	if s.files == nil {
		return domain.FolderRef{}, domain.ErrNotImplemented
	}
	if strings.TrimSpace(name) == "" {
		return domain.FolderRef{}, fmt.Errorf("%w: folder name is required", domain.ErrInvalidInput)
	}
	return s.files.CreateFolder(ctx, name)
}

// Upload stores an attachment in the named folder, creating the
// folder when it does not exist yet.
func (s *StorageService) Upload(ctx context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error) {
	if s.files == nil {
		return domain.UploadResult{}, domain.ErrNotImplemented
	}
	if strings.TrimSpace(folder) == "" {
		return domain.UploadResult{}, fmt.Errorf("%w: folder name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return domain.UploadResult{}, fmt.Errorf("%w: file name is required", domain.ErrInvalidInput)
	}
	return s.files.Upload(ctx, folder, name, content, contentType)
}
