package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	SessionService  driving.SessionService
	ProjectService  driving.ProjectService
	ScheduleService driving.ScheduleService
	SettingsService driving.SettingsService
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the console command.
var tuiCmd = &cobra.Command{
	Use:   "console",
	Short: "Launch the interactive studio console",
	Long: `Launch the interactive terminal console for the studio.

The console shows the project board, the monthly appointment schedule
and the configuration, all navigable from the keyboard.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the console command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in console: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Build ports from configuration, falling back to the services
	// injected on the package.
	ports := &tui.Ports{
		Session:  sessionService,
		Project:  projectService,
		Schedule: scheduleService,
		Settings: settingsService,
	}

	if tuiConfig != nil {
		ports.Session = tuiConfig.SessionService
		ports.Project = tuiConfig.ProjectService
		ports.Schedule = tuiConfig.ScheduleService
		ports.Settings = tuiConfig.SettingsService
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}
