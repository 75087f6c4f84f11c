package domain

// GoogleSettings holds the OAuth client configuration.
type GoogleSettings struct {
	// ClientID is the OAuth 2.0 client identifier.
	ClientID string

	// APIKey is an optional API key for unauthenticated discovery calls.
	APIKey string

	// ClientSecret is the OAuth client secret. Usually supplied via
	// the environment rather than the config file.
	ClientSecret string
}

// IsConfigured returns true if the OAuth client can start a sign-in.
func (g GoogleSettings) IsConfigured() bool {
	return g.ClientID != ""
}

// HasSecret returns true if a client secret is available. The token
// relay cannot exchange codes without one.
func (g GoogleSettings) HasSecret() bool {
	return g.ClientSecret != ""
}

// SheetsSettings holds the project database location.
type SheetsSettings struct {
	// SpreadsheetID identifies the backing spreadsheet.
	SpreadsheetID string

	// ProjectsSheet is the tab holding project rows.
	ProjectsSheet string
}

// DriveSettings holds the file storage configuration.
type DriveSettings struct {
	// RootFolderID is the parent for provisioned folders. Empty means
	// folders are created at the drive root.
	RootFolderID string
}

// CalendarSettings holds the schedule configuration.
type CalendarSettings struct {
	// ID is the calendar written to. Empty means the signed-in
	// user's primary calendar.
	ID string

	// TimeZone renders event times, e.g. "Asia/Taipei".
	TimeZone string

	// DefaultTime is the wall-clock fallback for events created
	// without a time, e.g. "09:00".
	DefaultTime string
}

// RelaySettings holds the token relay server configuration.
type RelaySettings struct {
	// Listen is the address the relay binds to, e.g. ":8787".
	Listen string

	// AllowedOrigins lists browser origins allowed to call the relay.
	AllowedOrigins []string
}

// AccessSettings holds the access directory configuration.
type AccessSettings struct {
	// File is the path to the TOML access directory. Empty disables
	// role lookup and every signed-in user resolves as guest.
	File string
}

// AppSettings holds the console configuration.
type AppSettings struct {
	// Google holds the OAuth client configuration.
	Google GoogleSettings

	// Sheets holds the project database location.
	Sheets SheetsSettings

	// Drive holds the file storage configuration.
	Drive DriveSettings

	// Calendar holds the schedule configuration.
	Calendar CalendarSettings

	// Relay holds the token relay server configuration.
	Relay RelaySettings

	// Access holds the access directory configuration.
	Access AccessSettings

	// DemoMode swaps every Workspace adapter for an in-memory fake.
	DemoMode bool
}

// DefaultAppSettings returns settings with sensible defaults.
// Google credentials are left unconfigured; sign-in only works once
// the user supplies a client ID.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Sheets: SheetsSettings{
			ProjectsSheet: "Projects",
		},
		Calendar: CalendarSettings{
			ID:          "primary",
			TimeZone:    "Asia/Taipei",
			DefaultTime: "09:00",
		},
		Relay: RelaySettings{
			Listen: ":8787",
		},
	}
}
