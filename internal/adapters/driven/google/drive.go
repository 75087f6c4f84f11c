package google

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// MimeTypeFolder is the Drive MIME type for folders.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// folderFields selects the file attributes the adapter needs.
const folderFields = "id, name, webViewLink"

// DriveAdapter implements the FileStorageClient port against the
// Google Drive v3 API. Folders are created under a configured root, or
// at the drive root when none is configured.
type DriveAdapter struct {
	boot         *Bootstrap
	rootFolderID string
	limiter      *RateLimiter
}

var _ driven.FileStorageClient = (*DriveAdapter)(nil)

// NewDriveAdapter creates a Drive adapter rooted at the given folder.
func NewDriveAdapter(boot *Bootstrap, rootFolderID string) *DriveAdapter {
	return &DriveAdapter{
		boot:         boot,
		rootFolderID: rootFolderID,
		limiter:      NewRateLimiter(ServiceDrive),
	}
}

// CreateFolder creates a folder under the configured root. Repeat calls
// with the same name create duplicates; use EnsureFolder for reuse.
func (a *DriveAdapter) CreateFolder(ctx context.Context, name string) (domain.FolderRef, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return domain.FolderRef{}, err
	}

	clients, err := a.boot.Clients(ctx)
	if err != nil {
		return domain.FolderRef{}, err
	}

	return a.createFolder(ctx, clients, name)
}

// EnsureFolder returns an existing folder with the given name under the
// configured root, creating one only when none exists.
func (a *DriveAdapter) EnsureFolder(ctx context.Context, name string) (domain.FolderRef, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return domain.FolderRef{}, err
	}

	clients, err := a.boot.Clients(ctx)
	if err != nil {
		return domain.FolderRef{}, err
	}

	found, err := a.findFolder(ctx, clients, name)
	if err == nil {
		return found, nil
	}
	if !IsNotFound(err) {
		return domain.FolderRef{}, err
	}

	return a.createFolder(ctx, clients, name)
}

// Upload stores a file in the named folder, reusing the folder when it
// already exists.
func (a *DriveAdapter) Upload(ctx context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error) {
	ref, err := a.EnsureFolder(ctx, folder)
	if err != nil {
		return domain.UploadResult{}, err
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return domain.UploadResult{}, err
	}

	clients, err := a.boot.Clients(ctx)
	if err != nil {
		return domain.UploadResult{}, err
	}

	meta := &drive.File{
		Name:    name,
		Parents: []string{ref.ID},
	}

	created, err := clients.Drive.Files.Create(meta).
		Media(bytes.NewReader(content), googleapi.ContentType(contentType)).
		Fields(folderFields).
		Context(ctx).
		Do()
	if err != nil {
		return domain.UploadResult{}, wrapError(err)
	}

	logger.Info("drive: uploaded %s to %s", name, folder)
	return domain.UploadResult{
		FileID: created.Id,
		Name:   created.Name,
		Folder: folder,
		URL:    created.WebViewLink,
	}, nil
}

func (a *DriveAdapter) createFolder(ctx context.Context, clients *Clients, name string) (domain.FolderRef, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: MimeTypeFolder,
	}
	if a.rootFolderID != "" {
		meta.Parents = []string{a.rootFolderID}
	}

	created, err := clients.Drive.Files.Create(meta).
		Fields(folderFields).
		Context(ctx).
		Do()
	if err != nil {
		return domain.FolderRef{}, wrapError(err)
	}

	logger.Info("drive: created folder %s (%s)", name, created.Id)
	return domain.FolderRef{
		ID:   created.Id,
		Name: created.Name,
		URL:  created.WebViewLink,
	}, nil
}

func (a *DriveAdapter) findFolder(ctx context.Context, clients *Clients, name string) (domain.FolderRef, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQuery(name), MimeTypeFolder)
	if a.rootFolderID != "" {
		query += fmt.Sprintf(" and '%s' in parents", escapeQuery(a.rootFolderID))
	}

	resp, err := clients.Drive.Files.List().
		Q(query).
		Fields("files(" + folderFields + ")").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return domain.FolderRef{}, wrapError(err)
	}

	if len(resp.Files) == 0 {
		return domain.FolderRef{}, fmt.Errorf("%w: folder %q", domain.ErrNotFound, name)
	}

	file := resp.Files[0]
	return domain.FolderRef{
		ID:   file.Id,
		Name: file.Name,
		URL:  file.WebViewLink,
	}, nil
}

// escapeQuery escapes a value for a Drive search query. Backslashes and
// single quotes would otherwise terminate the quoted term.
func escapeQuery(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}
