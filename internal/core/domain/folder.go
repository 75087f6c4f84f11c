package domain

// FolderRef points at a provisioned Drive folder.
type FolderRef struct {
	// ID is the provider's folder identifier.
	ID string `json:"id"`
	// Name is the folder name as created.
	Name string `json:"name"`
	// URL is the user-facing link.
	URL string `json:"url"`
}

// UploadResult describes a completed attachment upload.
type UploadResult struct {
	// FileID is the provider's file identifier.
	FileID string `json:"file_id"`
	// Name is the uploaded file name.
	Name string `json:"name"`
	// Folder is the containing folder name.
	Folder string `json:"folder"`
	// URL is the user-facing link.
	URL string `json:"url"`
	// Mock is true when the result came from the offline file store
	// rather than a real upload.
	Mock bool `json:"mock,omitempty"`
}
