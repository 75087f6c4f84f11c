package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Manage project folders on Drive",
	Long: `Provisions project folders on the studio Drive and uploads
attachments into them.

Each project gets one folder under the configured root. Uploading into
a folder that does not exist yet creates it first.`,
}

var foldersCreateCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Create a project folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFoldersCreate,
}

var foldersUploadCmd = &cobra.Command{
	Use:   "upload [folder-name] [file]",
	Short: "Upload a file into a project folder",
	Long: `Uploads a local file into the named project folder.

Examples:
  senteng folders upload "木質宅" ./平面圖.pdf
  senteng folders upload "老屋翻新" 報價單.xlsx --as 初版報價.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runFoldersUpload,
}

var foldersUploadAs string

func init() {
	foldersUploadCmd.Flags().StringVar(
		&foldersUploadAs, "as", "", "store under this name instead of the file name")

	foldersCmd.AddCommand(foldersCreateCmd)
	foldersCmd.AddCommand(foldersUploadCmd)
	rootCmd.AddCommand(foldersCmd)
}

func runFoldersCreate(cmd *cobra.Command, args []string) error {
	if storageService == nil {
		return errors.New("storage service not configured")
	}

	ctx := context.Background()

	folder, err := storageService.CreateFolder(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	cmd.Printf("Created folder %s.\n", folder.Name)
	if folder.URL != "" {
		cmd.Printf("Link: %s\n", folder.URL)
	}
	return nil
}

func runFoldersUpload(cmd *cobra.Command, args []string) error {
	if storageService == nil {
		return errors.New("storage service not configured")
	}

	ctx := context.Background()
	folderName, path := args[0], args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := foldersUploadAs
	if name == "" {
		name = filepath.Base(path)
	}

	result, err := storageService.Upload(ctx, folderName, name, content, detectContentType(path, content))
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %s to %s.\n", result.Name, result.Folder)
	if result.URL != "" {
		cmd.Printf("Link: %s\n", result.URL)
	}
	if result.Mock {
		cmd.Println("(stored locally: demo mode)")
	}
	return nil
}

// detectContentType resolves a MIME type from the file extension,
// falling back to content sniffing for unknown extensions.
func detectContentType(path string, content []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return http.DetectContentType(content)
}
