package driven

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// FileStorageClient provisions folders and uploads attachments.
//
// Two implementations exist: the Drive adapter for real uploads and a
// memory adapter for offline/demo use. The memory adapter is injected
// explicitly; no production path silently falls back to it.
type FileStorageClient interface {
	// CreateFolder creates a folder under the configured root (or the
	// storage root if unconfigured) and returns its reference.
	// Not idempotent: repeated calls with the same name create
	// duplicate folders.
	CreateFolder(ctx context.Context, name string) (domain.FolderRef, error)

	// EnsureFolder finds a folder by exact name under the configured
	// root, creating it when absent.
	EnsureFolder(ctx context.Context, name string) (domain.FolderRef, error)

	// Upload stores content as a file inside the named folder
	// (find-or-create) and returns the resulting reference.
	Upload(ctx context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error)
}
