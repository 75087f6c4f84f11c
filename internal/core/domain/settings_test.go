package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGoogleSettings_IsConfigured tests sign-in readiness detection
func TestGoogleSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings GoogleSettings
		expected bool
	}{
		{
			name:     "client id set",
			settings: GoogleSettings{ClientID: "client-id.apps.googleusercontent.com"},
			expected: true,
		},
		{
			name:     "client id with secret",
			settings: GoogleSettings{ClientID: "client-id", ClientSecret: "secret"},
			expected: true,
		},
		{
			name:     "empty settings",
			settings: GoogleSettings{},
			expected: false,
		},
		{
			name:     "secret without client id",
			settings: GoogleSettings{ClientSecret: "secret"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsConfigured())
		})
	}
}

// TestGoogleSettings_HasSecret tests relay readiness detection
func TestGoogleSettings_HasSecret(t *testing.T) {
	assert.True(t, GoogleSettings{ClientSecret: "secret"}.HasSecret())
	assert.False(t, GoogleSettings{ClientID: "client-id"}.HasSecret())
}

// TestDefaultAppSettings tests the default configuration values
func TestDefaultAppSettings(t *testing.T) {
	defaults := DefaultAppSettings()

	assert.Equal(t, "Projects", defaults.Sheets.ProjectsSheet)
	assert.Equal(t, "primary", defaults.Calendar.ID)
	assert.Equal(t, "Asia/Taipei", defaults.Calendar.TimeZone)
	assert.Equal(t, "09:00", defaults.Calendar.DefaultTime)
	assert.Equal(t, ":8787", defaults.Relay.Listen)

	// Credentials and data locations stay unset until configured.
	assert.Empty(t, defaults.Google.ClientID)
	assert.Empty(t, defaults.Sheets.SpreadsheetID)
	assert.Empty(t, defaults.Drive.RootFolderID)
	assert.Empty(t, defaults.Access.File)
	assert.False(t, defaults.DemoMode)
}
