package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the studio project list",
	Long: `Reads and updates the project list in the studio's Google Sheet.

The sheet is the single source of truth: every read reloads it and
every write replaces it. Rows edited by hand in the sheet show up on
the next 'senteng projects list'.`,
	RunE: runProjectsList,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectsList,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a project to the sheet",
	Long: `Appends a project row to the sheet.

Examples:
  senteng projects add "木質宅" --client "林公館" --type 住宅 --budget 1500000
  senteng projects add "老屋翻新" --due 2026-11-30 --status 進行中`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectsAdd,
}

var projectsSetStatusCmd = &cobra.Command{
	Use:   "set-status [project-id] [status]",
	Short: "Update one project's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectsSetStatus,
}

var projectsAttachCmd = &cobra.Command{
	Use:   "attach-folder [project-id] [folder-url]",
	Short: "Record a Drive folder link on a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectsAttach,
}

// Flags for projects.
var (
	projectsJSON     bool
	projectAddClient string
	projectAddType   string
	projectAddBudget float64
	projectAddDue    string
	projectAddStatus string
)

func init() {
	projectsCmd.PersistentFlags().BoolVar(
		&projectsJSON, "json", false, "output as JSON")

	projectsAddCmd.Flags().StringVar(
		&projectAddClient, "client", "", "client name")
	projectsAddCmd.Flags().StringVar(
		&projectAddType, "type", "", "engagement type, e.g. 住宅 or 商業空間")
	projectsAddCmd.Flags().Float64Var(
		&projectAddBudget, "budget", 0, "project budget")
	projectsAddCmd.Flags().StringVar(
		&projectAddDue, "due", "", "delivery date (YYYY-MM-DD)")
	projectsAddCmd.Flags().StringVar(
		&projectAddStatus, "status", "", "initial status")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsSetStatusCmd)
	projectsCmd.AddCommand(projectsAttachCmd)
	rootCmd.AddCommand(projectsCmd)
}

func runProjectsList(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	ctx := context.Background()

	projects, err := projectService.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if projectsJSON {
		return outputProjectsJSON(cmd, projects)
	}
	return outputProjectsTable(cmd, projects)
}

func outputProjectsJSON(cmd *cobra.Command, projects []domain.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputProjectsTable(cmd *cobra.Command, projects []domain.Project) error {
	if len(projects) == 0 {
		cmd.Println("No projects yet. Add one with 'senteng projects add'.")
		return nil
	}

	cmd.Printf("Projects (%d):\n", len(projects))
	cmd.Println()
	for i := range projects {
		p := &projects[i]
		cmd.Printf("  %s  %s\n", p.ID, p.Name)
		if p.Client != "" || p.Type != "" {
			cmd.Printf("      Client: %s  Type: %s\n", p.Client, p.Type)
		}
		if p.Budget > 0 {
			cmd.Printf("      Budget: %.0f\n", p.Budget)
		}
		if p.Status != "" || p.DueDate != "" {
			cmd.Printf("      Status: %s  Due: %s\n", p.Status, p.DueDate)
		}
		if p.FolderURL != "" {
			cmd.Printf("      Folder: %s\n", p.FolderURL)
		}
		cmd.Println()
	}
	return nil
}

func runProjectsAdd(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	ctx := context.Background()

	project := domain.Project{
		Name:    args[0],
		Client:  projectAddClient,
		Type:    projectAddType,
		Budget:  projectAddBudget,
		DueDate: projectAddDue,
		Status:  projectAddStatus,
	}

	created, err := projectService.Create(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	cmd.Printf("Added project %s (%s).\n", created.Name, created.ID)
	return nil
}

func runProjectsSetStatus(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	ctx := context.Background()
	id, status := args[0], args[1]

	if err := projectService.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	cmd.Printf("Project %s is now %s.\n", id, status)
	return nil
}

func runProjectsAttach(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	ctx := context.Background()
	id, folderURL := args[0], args[1]

	if err := projectService.AttachFolder(ctx, id, folderURL); err != nil {
		return fmt.Errorf("failed to attach folder: %w", err)
	}

	cmd.Printf("Attached folder to project %s.\n", id)
	return nil
}
