package cli

import (
	"github.com/spf13/cobra"

	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// version is set via ldflags at build time.
var version = "dev"

// Services injected by main before Execute. Commands guard against nil
// so a partially wired binary fails with a message, not a panic.
var (
	sessionService  driving.SessionService
	projectService  driving.ProjectService
	scheduleService driving.ScheduleService
	storageService  driving.StorageService
	settingsService driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "senteng",
	Short: "Operations console for the Senteng design studio",
	Long: `senteng keeps the studio's day-to-day operations in Google Workspace.

The project list lives in a shared Google Sheet, client folders on
Drive, and site visits on the studio calendar. Sign in once with
'senteng login'; the session persists until you sign out.

Start with:
  senteng login            # sign in with the studio Google account
  senteng projects list    # show the project list
  senteng schedule month   # show this month's appointments`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSessionService injects the session service.
func SetSessionService(s driving.SessionService) {
	sessionService = s
}

// SetProjectService injects the project service.
func SetProjectService(s driving.ProjectService) {
	projectService = s
}

// SetScheduleService injects the schedule service.
func SetScheduleService(s driving.ScheduleService) {
	scheduleService = s
}

// SetStorageService injects the storage service.
func SetStorageService(s driving.StorageService) {
	storageService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}
