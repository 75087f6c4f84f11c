package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// mockStorageService implements driving.StorageService for testing.
type mockStorageService struct {
	CreateFolderFunc func(ctx context.Context, name string) (domain.FolderRef, error)
	UploadFunc       func(ctx context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error)
}

func (m *mockStorageService) CreateFolder(ctx context.Context, name string) (domain.FolderRef, error) {
	if m.CreateFolderFunc != nil {
		return m.CreateFolderFunc(ctx, name)
	}
	return domain.FolderRef{Name: name}, nil
}

func (m *mockStorageService) Upload(ctx context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, folder, name, content, contentType)
	}
	return domain.UploadResult{Name: name, Folder: folder}, nil
}

func setupStorageTest(m *mockStorageService) func() {
	oldStorage := storageService
	storageService = m
	return func() {
		storageService = oldStorage
		foldersUploadAs = ""
	}
}

func TestFoldersCmd_Use(t *testing.T) {
	assert.Equal(t, "folders", foldersCmd.Use)
}

func TestFoldersCmd_Short(t *testing.T) {
	assert.Equal(t, "Manage project folders on Drive", foldersCmd.Short)
}

func TestFoldersCreateCmd_CreatesFolder(t *testing.T) {
	cleanup := setupStorageTest(&mockStorageService{
		CreateFolderFunc: func(_ context.Context, name string) (domain.FolderRef, error) {
			return domain.FolderRef{
				ID:   "fld-1",
				Name: name,
				URL:  "https://drive.google.com/drive/folders/fld-1",
			}, nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"folders", "create", "木質宅"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Created folder 木質宅.")
	assert.Contains(t, buf.String(), "Link: https://drive.google.com/drive/folders/fld-1")
}

func TestFoldersCreateCmd_NoLink(t *testing.T) {
	cleanup := setupStorageTest(&mockStorageService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"folders", "create", "老屋翻新"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Created folder 老屋翻新.")
	assert.NotContains(t, buf.String(), "Link:")
}

func TestFoldersCreateCmd_Error(t *testing.T) {
	cleanup := setupStorageTest(&mockStorageService{
		CreateFolderFunc: func(_ context.Context, _ string) (domain.FolderRef, error) {
			return domain.FolderRef{}, errors.New("drive unavailable")
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"folders", "create", "木質宅"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create folder")
}

func TestFoldersUploadCmd_UploadsFile(t *testing.T) {
	var gotFolder, gotName, gotContentType string
	var gotContent []byte
	cleanup := setupStorageTest(&mockStorageService{
		UploadFunc: func(_ context.Context, folder, name string, content []byte, contentType string) (domain.UploadResult, error) {
			gotFolder = folder
			gotName = name
			gotContent = content
			gotContentType = contentType
			return domain.UploadResult{
				FileID: "file-1",
				Name:   name,
				Folder: folder,
				URL:    "https://drive.google.com/file/d/file-1/view",
			}, nil
		},
	})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "平面圖.pdf")
	assert.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 floor plan"), 0o600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"folders", "upload", "木質宅", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "木質宅", gotFolder)
	assert.Equal(t, "平面圖.pdf", gotName)
	assert.Equal(t, []byte("%PDF-1.4 floor plan"), gotContent)
	assert.Equal(t, "application/pdf", gotContentType)
	assert.Contains(t, buf.String(), "Uploaded 平面圖.pdf to 木質宅.")
	assert.Contains(t, buf.String(), "Link: https://drive.google.com/file/d/file-1/view")
}

func TestFoldersUploadCmd_RenamesWithAsFlag(t *testing.T) {
	var gotName string
	cleanup := setupStorageTest(&mockStorageService{
		UploadFunc: func(_ context.Context, folder, name string, _ []byte, _ string) (domain.UploadResult, error) {
			gotName = name
			return domain.UploadResult{Name: name, Folder: folder}, nil
		},
	})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "quote-draft.xlsx")
	assert.NoError(t, os.WriteFile(path, []byte("quote"), 0o600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"folders", "upload", "老屋翻新", path, "--as", "初版報價.xlsx"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "初版報價.xlsx", gotName)
	assert.Contains(t, buf.String(), "Uploaded 初版報價.xlsx to 老屋翻新.")
}

func TestFoldersUploadCmd_DemoMode(t *testing.T) {
	cleanup := setupStorageTest(&mockStorageService{
		UploadFunc: func(_ context.Context, folder, name string, _ []byte, _ string) (domain.UploadResult, error) {
			return domain.UploadResult{Name: name, Folder: folder, Mock: true}, nil
		},
	})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "notes.txt")
	assert.NoError(t, os.WriteFile(path, []byte("notes"), 0o600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"folders", "upload", "木質宅", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "(stored locally: demo mode)")
}

func TestFoldersUploadCmd_MissingFile(t *testing.T) {
	cleanup := setupStorageTest(&mockStorageService{})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "missing.pdf")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"folders", "upload", "木質宅", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestFoldersUploadCmd_Error(t *testing.T) {
	cleanup := setupStorageTest(&mockStorageService{
		UploadFunc: func(_ context.Context, _, _ string, _ []byte, _ string) (domain.UploadResult, error) {
			return domain.UploadResult{}, errors.New("quota exceeded")
		},
	})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "notes.txt")
	assert.NoError(t, os.WriteFile(path, []byte("notes"), 0o600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"folders", "upload", "木質宅", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "upload failed")
}

func TestFoldersCmd_ServiceNotConfigured(t *testing.T) {
	oldStorage := storageService
	storageService = nil
	defer func() {
		storageService = oldStorage
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"folders", "create", "木質宅"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "storage service not configured")
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content []byte
		want    string
	}{
		{
			name:    "known extension",
			path:    "平面圖.pdf",
			content: []byte("%PDF-1.4"),
			want:    "application/pdf",
		},
		{
			name:    "unknown extension sniffs content",
			path:    "photo.raw2",
			content: []byte("\xff\xd8\xff\xe0jfif"),
			want:    "image/jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectContentType(tt.path, tt.content))
		})
	}
}
