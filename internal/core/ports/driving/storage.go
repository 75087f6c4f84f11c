package driving

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// StorageService provisions project folders and uploads attachments.
type StorageService interface {
	// CreateFolder creates a folder for the named project and returns
	// a user-facing link. Repeated calls create duplicates.
	CreateFolder(ctx context.Context, name string) (domain.FolderRef, error)

	// Upload stores an attachment in the named folder, creating the
	// folder when it does not exist yet.
	Upload(ctx context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error)
}
