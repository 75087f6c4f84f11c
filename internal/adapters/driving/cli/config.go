package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage console configuration",
	Long: `Shows and updates the console configuration in ~/.senteng.

The OAuth client secret is special: prefer supplying it via the
SENTENG_GOOGLE_CLIENT_SECRET environment variable so it stays out of
the config file. Values shown for secret keys are always masked.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one configuration value",
	Long: `Sets a configuration value. Run 'senteng config list' for the keys.

Omit the value for google.client_secret or google.api_key to be
prompted with input hidden, keeping the secret out of shell history.

Examples:
  senteng config set sheets.spreadsheet_id 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
  senteng config set calendar.timezone Asia/Taipei
  senteng config set relay.allowed_origins "https://console.senteng.design,http://localhost:5173"
  senteng config set google.client_secret`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration keys",
	RunE:  runConfigList,
}

var configSheetCmd = &cobra.Command{
	Use:   "sheet [spreadsheet-id]",
	Short: "Point the console at a project spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSheet,
}

var configDemoCmd = &cobra.Command{
	Use:   "demo [on|off]",
	Short: "Toggle demo mode",
	Long: `Toggles demo mode. When on, every Workspace call is served from
in-memory fixtures, so the console works without a Google account.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigDemo,
}

var configSheetTab string

func init() {
	configSheetCmd.Flags().StringVar(
		&configSheetTab, "tab", "", "sheet tab holding project rows")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSheetCmd)
	configCmd.AddCommand(configDemoCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys lists the settable keys in display order.
var configKeys = []string{
	"google.client_id",
	"google.api_key",
	"google.client_secret",
	"sheets.spreadsheet_id",
	"sheets.projects_sheet",
	"drive.root_folder_id",
	"calendar.id",
	"calendar.timezone",
	"calendar.default_time",
	"relay.listen",
	"relay.allowed_origins",
	"access.file",
	"demo.enabled",
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Google]")
	cmd.Printf("  Client ID: %s\n", orUnset(settings.Google.ClientID))
	if settings.Google.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskSecret(settings.Google.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	if settings.Google.HasSecret() {
		cmd.Printf("  Client Secret: %s\n", maskSecret(settings.Google.ClientSecret))
	} else {
		cmd.Printf("  Client Secret: (not set)\n")
	}
	status := "configured"
	if !settings.Google.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Sheets]")
	cmd.Printf("  Spreadsheet: %s\n", orUnset(settings.Sheets.SpreadsheetID))
	cmd.Printf("  Projects Tab: %s\n", settings.Sheets.ProjectsSheet)
	cmd.Println()

	cmd.Println("[Drive]")
	cmd.Printf("  Root Folder: %s\n", orUnset(settings.Drive.RootFolderID))
	cmd.Println()

	cmd.Println("[Calendar]")
	cmd.Printf("  Calendar: %s\n", settings.Calendar.ID)
	cmd.Printf("  Time Zone: %s\n", settings.Calendar.TimeZone)
	cmd.Printf("  Default Time: %s\n", settings.Calendar.DefaultTime)
	cmd.Println()

	cmd.Println("[Relay]")
	cmd.Printf("  Listen: %s\n", settings.Relay.Listen)
	if len(settings.Relay.AllowedOrigins) > 0 {
		cmd.Printf("  Allowed Origins: %s\n", strings.Join(settings.Relay.AllowedOrigins, ", "))
	} else {
		cmd.Printf("  Allowed Origins: (none)\n")
	}
	cmd.Println()

	cmd.Println("[Access]")
	cmd.Printf("  Directory File: %s\n", orUnset(settings.Access.File))
	cmd.Println()

	if settings.DemoMode {
		cmd.Println("Demo mode is ON: all Workspace calls are served from fixtures.")
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	value, err := settingValue(settings, args[0])
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]

	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case isSecretKey(key):
		cmd.Printf("Enter %s (input hidden): ", key)
		value = readSecret(cmd)
		cmd.Println()
		if value == "" {
			return errors.New("no value entered")
		}
	default:
		return fmt.Errorf("missing value for %s", key)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if isSecretKey(key) {
		cmd.Printf("Set %s to %s.\n", key, maskSecret(value))
	} else {
		cmd.Printf("Set %s to %s.\n", key, value)
	}
	return nil
}

// isSecretKey reports whether a key's value must never be echoed in full.
func isSecretKey(key string) bool {
	return key == "google.client_secret" || key == "google.api_key"
}

// readSecret reads a value without echo when stdin is a terminal, falling
// back to a plain line read for pipes and tests.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(cmd *cobra.Command) string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	cmd.Println("Configuration keys:")
	for _, key := range configKeys {
		cmd.Printf("  %s\n", key)
	}
	return nil
}

func runConfigSheet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetSpreadsheet(args[0], configSheetTab); err != nil {
		return fmt.Errorf("failed to set spreadsheet: %w", err)
	}

	cmd.Printf("Project database set to spreadsheet %s.\n", args[0])
	return nil
}

func runConfigDemo(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var enabled bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		enabled = true
	case "off", "false", "0":
		enabled = false
	default:
		return fmt.Errorf("invalid value %q, expected on or off", args[0])
	}

	if err := settingsService.SetDemoMode(enabled); err != nil {
		return fmt.Errorf("failed to toggle demo mode: %w", err)
	}

	if enabled {
		cmd.Println("Demo mode is ON. Restart running sessions to pick it up.")
	} else {
		cmd.Println("Demo mode is OFF.")
	}
	return nil
}

// settingValue resolves one key for display. Secret values come back
// masked so they never land in terminal scrollback.
func settingValue(settings *domain.AppSettings, key string) (string, error) {
	switch key {
	case "google.client_id":
		return settings.Google.ClientID, nil
	case "google.api_key":
		if settings.Google.APIKey == "" {
			return "", nil
		}
		return maskSecret(settings.Google.APIKey), nil
	case "google.client_secret":
		if settings.Google.ClientSecret == "" {
			return "", nil
		}
		return maskSecret(settings.Google.ClientSecret), nil
	case "sheets.spreadsheet_id":
		return settings.Sheets.SpreadsheetID, nil
	case "sheets.projects_sheet":
		return settings.Sheets.ProjectsSheet, nil
	case "drive.root_folder_id":
		return settings.Drive.RootFolderID, nil
	case "calendar.id":
		return settings.Calendar.ID, nil
	case "calendar.timezone":
		return settings.Calendar.TimeZone, nil
	case "calendar.default_time":
		return settings.Calendar.DefaultTime, nil
	case "relay.listen":
		return settings.Relay.Listen, nil
	case "relay.allowed_origins":
		return strings.Join(settings.Relay.AllowedOrigins, ","), nil
	case "access.file":
		return settings.Access.File, nil
	case "demo.enabled":
		return strconv.FormatBool(settings.DemoMode), nil
	default:
		return "", fmt.Errorf("unknown key %q, see 'senteng config list'", key)
	}
}

// applySetting writes one key into the settings struct.
func applySetting(settings *domain.AppSettings, key, value string) error {
	switch key {
	case "google.client_id":
		settings.Google.ClientID = value
	case "google.api_key":
		settings.Google.APIKey = value
	case "google.client_secret":
		settings.Google.ClientSecret = value
	case "sheets.spreadsheet_id":
		settings.Sheets.SpreadsheetID = value
	case "sheets.projects_sheet":
		settings.Sheets.ProjectsSheet = value
	case "drive.root_folder_id":
		settings.Drive.RootFolderID = value
	case "calendar.id":
		settings.Calendar.ID = value
	case "calendar.timezone":
		settings.Calendar.TimeZone = value
	case "calendar.default_time":
		settings.Calendar.DefaultTime = value
	case "relay.listen":
		settings.Relay.Listen = value
	case "relay.allowed_origins":
		settings.Relay.AllowedOrigins = splitOrigins(value)
	case "access.file":
		settings.Access.File = value
	case "demo.enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for demo.enabled, expected true or false", value)
		}
		settings.DemoMode = enabled
	default:
		return fmt.Errorf("unknown key %q, see 'senteng config list'", key)
	}
	return nil
}

// splitOrigins parses a comma-separated origin list, dropping blanks.
func splitOrigins(value string) []string {
	var origins []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// maskSecret hides the middle of a credential for display.
func maskSecret(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// orUnset renders empty values as a placeholder.
func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}
