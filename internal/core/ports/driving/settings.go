package driving

import "github.com/xiangteng007/senteng-design-system/internal/core/domain"

// SettingsService manages the console configuration.
type SettingsService interface {
	// Get retrieves current settings, filling unset keys with defaults.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error

	// SetSpreadsheet points the console at a different project database.
	SetSpreadsheet(spreadsheetID, sheet string) error

	// SetDemoMode toggles the in-memory demo wiring.
	SetDemoMode(enabled bool) error
}
