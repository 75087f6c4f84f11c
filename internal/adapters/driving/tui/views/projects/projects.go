// Package projects provides the project browser view for the TUI.
package projects

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/messages"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/styles"
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// statusCycle is the order the "s" key walks a project's status
// through. Free-text statuses outside the cycle restart it.
var statusCycle = []string{"規劃中", "進行中", "已完工"}

// View is the project browser view.
type View struct {
	styles         *styles.Styles
	projectService driving.ProjectService

	projects []domain.Project
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a new projects view.
func NewView(s *styles.Styles, projectService driving.ProjectService) *View {
	return &View{
		styles:         s,
		projectService: projectService,
		projects:       []domain.Project{},
	}
}

// Init initialises the view and loads projects.
func (v *View) Init() tea.Cmd {
	return v.loadProjects()
}

// loadProjects returns a command that loads projects from the service.
func (v *View) loadProjects() tea.Cmd {
	return func() tea.Msg {
		if v.projectService == nil {
			return messages.ProjectsLoaded{Err: fmt.Errorf("project service not available")}
		}

		ctx := context.Background()
		projects, err := v.projectService.ListProjects(ctx)
		if err != nil {
			return messages.ProjectsLoaded{Err: err}
		}

		return messages.ProjectsLoaded{Projects: projects, Err: nil}
	}
}

// Update handles messages for the projects view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProjectsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.projects = msg.Projects
			v.err = nil
			if v.selected >= len(v.projects) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.ProjectStatusChanged:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			// Reload projects after the write
			cmd := v.loadProjects()
			return v, cmd
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.projects)-1 {
			v.selected++
		}
	case "s":
		// Cycle the selected project's status
		if len(v.projects) > 0 && v.selected < len(v.projects) {
			project := v.projects[v.selected]
			cmd := v.setStatus(project.ID, nextStatus(project.Status))
			return v, cmd
		}
	case "r":
		// Reload projects
		v.loading = true
		cmd := v.loadProjects()
		return v, cmd
	}

	return v, nil
}

// nextStatus returns the status following current in the cycle.
func nextStatus(current string) string {
	for i, status := range statusCycle {
		if status == current {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return statusCycle[0]
}

// setStatus returns a command that updates one project's status.
func (v *View) setStatus(id, status string) tea.Cmd {
	return func() tea.Msg {
		if v.projectService == nil {
			return messages.ProjectStatusChanged{ID: id, Status: status, Err: fmt.Errorf("project service not available")}
		}

		err := v.projectService.SetStatus(context.Background(), id, status)
		return messages.ProjectStatusChanged{ID: id, Status: status, Err: err}
	}
}

// View renders the projects view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	b.WriteString(v.styles.Title.Render("Projects"))
	b.WriteString("\n\n")

	// Loading state
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading projects..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Empty state
	if len(v.projects) == 0 {
		b.WriteString(v.styles.Muted.Render("No projects yet."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Projects list
	for i := range v.projects {
		line := v.renderProject(i, &v.projects[i])
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderProject renders a single project line.
func (v *View) renderProject(index int, project *domain.Project) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	// Format: > [status] name - client (due)
	status := project.Status
	if status == "" {
		status = "-"
	}
	statusStr := fmt.Sprintf("[%s]", status)

	name := project.Name
	if name == "" {
		name = project.ID
	}
	if project.Client != "" {
		name = fmt.Sprintf("%s - %s", name, project.Client)
	}
	if project.DueDate != "" {
		name = fmt.Sprintf("%s (%s)", name, project.DueDate)
	}

	// Truncate name if needed. Rune-based because names are
	// frequently Chinese.
	maxNameLen := v.width - len(statusStr) - 12
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen-3]) + "..."
	}

	var line string
	if index == v.selected {
		line = v.styles.Selected.Render(fmt.Sprintf("%s%-10s %s", indicator, statusStr, name))
	} else {
		line = v.styles.Normal.Render(indicator) +
			v.statusStyle(project.Status).Render(fmt.Sprintf("%-10s ", statusStr)) +
			v.styles.Normal.Render(name)
	}

	return line
}

// statusStyle maps register statuses to semantic colours.
// Free-text statuses render like subtitles.
func (v *View) statusStyle(status string) lipgloss.Style {
	switch status {
	case "已完工":
		return v.styles.Success
	case "進行中":
		return v.styles.Warning
	case "規劃中":
		return v.styles.Muted
	default:
		return v.styles.Subtitle
	}
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[s] cycle status  [r] reload  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Projects returns the current list of projects.
func (v *View) Projects() []domain.Project {
	return v.projects
}

// SelectedIndex returns the currently selected project index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
