package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGoogleClientID     = "google.client_id"
	keyGoogleAPIKey       = "google.api_key"
	keyGoogleClientSecret = "google.client_secret"
	keySheetsSpreadsheet  = "sheets.spreadsheet_id"
	keySheetsProjects     = "sheets.projects_sheet"
	keyDriveRoot          = "drive.root_folder_id"
	keyCalendarID         = "calendar.id"
	keyCalendarTimeZone   = "calendar.timezone"
	keyCalendarDefault    = "calendar.default_time"
	keyRelayListen        = "relay.listen"
	keyRelayOrigins       = "relay.allowed_origins"
	keyAccessFile         = "access.file"
	keyDemoEnabled        = "demo.enabled"
)

// EnvClientSecret is the environment override for the OAuth client
// secret, so the secret can stay out of the config file.
//
//nolint:gosec // G101: Environment variable name, not a credential.
const EnvClientSecret = "SENTENG_GOOGLE_CLIENT_SECRET"

// SettingsService manages the console configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current settings, filling unset keys with defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Google: domain.GoogleSettings{
			ClientID:     s.configStore.GetString(keyGoogleClientID),
			APIKey:       s.configStore.GetString(keyGoogleAPIKey),
			ClientSecret: s.clientSecret(),
		},
		Sheets: domain.SheetsSettings{
			SpreadsheetID: s.configStore.GetString(keySheetsSpreadsheet),
			ProjectsSheet: s.getString(keySheetsProjects, defaults.Sheets.ProjectsSheet),
		},
		Drive: domain.DriveSettings{
			RootFolderID: s.configStore.GetString(keyDriveRoot),
		},
		Calendar: domain.CalendarSettings{
			ID:          s.getString(keyCalendarID, defaults.Calendar.ID),
			TimeZone:    s.getString(keyCalendarTimeZone, defaults.Calendar.TimeZone),
			DefaultTime: s.getString(keyCalendarDefault, defaults.Calendar.DefaultTime),
		},
		Relay: domain.RelaySettings{
			Listen:         s.getString(keyRelayListen, defaults.Relay.Listen),
			AllowedOrigins: s.configStore.GetStringSlice(keyRelayOrigins),
		},
		Access: domain.AccessSettings{
			File: s.configStore.GetString(keyAccessFile),
		},
		DemoMode: s.configStore.GetBool(keyDemoEnabled),
	}

	return settings, nil
}

// Save persists the settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyGoogleClientID, settings.Google.ClientID); err != nil {
		return fmt.Errorf("save google client_id: %w", err)
	}
	if err := s.configStore.Set(keyGoogleAPIKey, settings.Google.APIKey); err != nil {
		return fmt.Errorf("save google api_key: %w", err)
	}

	// The secret is only written when it did not come from the
	// environment, so an env-supplied secret never lands on disk.
	if settings.Google.ClientSecret != "" && settings.Google.ClientSecret != os.Getenv(EnvClientSecret) {
		if err := s.configStore.Set(keyGoogleClientSecret, settings.Google.ClientSecret); err != nil {
			return fmt.Errorf("save google client_secret: %w", err)
		}
	}

	if err := s.configStore.Set(keySheetsSpreadsheet, settings.Sheets.SpreadsheetID); err != nil {
		return fmt.Errorf("save spreadsheet id: %w", err)
	}
	if err := s.configStore.Set(keySheetsProjects, settings.Sheets.ProjectsSheet); err != nil {
		return fmt.Errorf("save projects sheet: %w", err)
	}
	if err := s.configStore.Set(keyDriveRoot, settings.Drive.RootFolderID); err != nil {
		return fmt.Errorf("save drive root: %w", err)
	}
	if err := s.configStore.Set(keyCalendarID, settings.Calendar.ID); err != nil {
		return fmt.Errorf("save calendar id: %w", err)
	}
	if err := s.configStore.Set(keyCalendarTimeZone, settings.Calendar.TimeZone); err != nil {
		return fmt.Errorf("save calendar timezone: %w", err)
	}
	if err := s.configStore.Set(keyCalendarDefault, settings.Calendar.DefaultTime); err != nil {
		return fmt.Errorf("save calendar default time: %w", err)
	}
	if err := s.configStore.Set(keyRelayListen, settings.Relay.Listen); err != nil {
		return fmt.Errorf("save relay listen: %w", err)
	}
	if err := s.configStore.Set(keyRelayOrigins, settings.Relay.AllowedOrigins); err != nil {
		return fmt.Errorf("save relay origins: %w", err)
	}
	if err := s.configStore.Set(keyAccessFile, settings.Access.File); err != nil {
		return fmt.Errorf("save access file: %w", err)
	}
	if err := s.configStore.Set(keyDemoEnabled, settings.DemoMode); err != nil {
		return fmt.Errorf("save demo mode: %w", err)
	}

	return nil
}

// SetSpreadsheet points the console at a different project database.
func (s *SettingsService) SetSpreadsheet(spreadsheetID, sheet string) error {
	if strings.TrimSpace(spreadsheetID) == "" {
		return fmt.Errorf("%w: spreadsheet id is required", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Sheets.SpreadsheetID = spreadsheetID
	if sheet != "" {
		settings.Sheets.ProjectsSheet = sheet
	}

	return s.Save(settings)
}

// SetDemoMode toggles the in-memory demo wiring.
func (s *SettingsService) SetDemoMode(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.DemoMode = enabled
	return s.Save(settings)
}

// clientSecret resolves the OAuth client secret, preferring the
// environment over the config file.
func (s *SettingsService) clientSecret() string {
	if v := os.Getenv(EnvClientSecret); v != "" {
		return v
	}
	return s.configStore.GetString(keyGoogleClientSecret)
}

// getString reads a key with a fallback default.
func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}
