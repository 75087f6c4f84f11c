package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// TestViewType_String tests all ViewType string representations
func TestViewType_String(t *testing.T) {
	tests := []struct {
		name     string
		view     ViewType
		expected string
	}{
		{"ViewMenu", ViewMenu, "menu"},
		{"ViewProjects", ViewProjects, "projects"},
		{"ViewSchedule", ViewSchedule, "schedule"},
		{"ViewSettings", ViewSettings, "settings"},
		{"ViewHelp", ViewHelp, "help"},
		{"UnknownView", ViewType(99), "unknown"},
		{"NegativeView", ViewType(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

// TestViewChanged tests the ViewChanged message type
func TestViewChanged(t *testing.T) {
	t.Run("to projects view", func(t *testing.T) {
		msg := ViewChanged{View: ViewProjects}
		assert.Equal(t, ViewProjects, msg.View)
	})

	t.Run("to schedule view", func(t *testing.T) {
		msg := ViewChanged{View: ViewSchedule}
		assert.Equal(t, ViewSchedule, msg.View)
	})
}

// TestSessionLoaded tests the SessionLoaded message type
func TestSessionLoaded(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		session := &domain.Session{
			Profile: domain.UserProfile{Name: "林美惠", Email: "mei@senteng.design"},
		}
		msg := SessionLoaded{
			Session: session,
			Access:  domain.AccessProfile{Role: domain.RoleAdmin},
		}

		require.NotNil(t, msg.Session)
		assert.Equal(t, "mei@senteng.design", msg.Session.Profile.Email)
		assert.Equal(t, domain.RoleAdmin, msg.Access.Role)
		assert.NoError(t, msg.Err)
	})

	t.Run("signed out", func(t *testing.T) {
		msg := SessionLoaded{}
		assert.Nil(t, msg.Session)
	})
}

// TestProjectsLoaded tests the ProjectsLoaded message type
func TestProjectsLoaded(t *testing.T) {
	t.Run("with projects", func(t *testing.T) {
		projects := []domain.Project{
			{ID: "proj-1", Name: "木質宅", Status: "進行中"},
			{ID: "proj-2", Name: "老屋翻新", Status: "已完工"},
		}
		msg := ProjectsLoaded{Projects: projects}

		require.Len(t, msg.Projects, 2)
		assert.Equal(t, "proj-1", msg.Projects[0].ID)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("sheet unavailable")
		msg := ProjectsLoaded{Err: err}

		assert.Nil(t, msg.Projects)
		assert.Error(t, msg.Err)
	})
}

// TestScheduleLoaded tests the ScheduleLoaded message type
func TestScheduleLoaded(t *testing.T) {
	t.Run("with events", func(t *testing.T) {
		events := []domain.ScheduleEvent{
			{ID: "ev-1", Title: "林公館 丈量", Date: "2026-09-02"},
		}
		msg := ScheduleLoaded{Month: "2026-09", Events: events}

		assert.Equal(t, "2026-09", msg.Month)
		require.Len(t, msg.Events, 1)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("calendar unavailable")
		msg := ScheduleLoaded{Month: "2026-09", Err: err}

		assert.Empty(t, msg.Events)
		assert.Error(t, msg.Err)
	})
}

// TestErrorOccurred tests the ErrorOccurred message type
func TestErrorOccurred(t *testing.T) {
	t.Run("with standard error", func(t *testing.T) {
		err := errors.New("something went wrong")
		msg := ErrorOccurred{Err: err}

		assert.Error(t, msg.Err)
		assert.Equal(t, "something went wrong", msg.Err.Error())
	})

	t.Run("with nil error", func(t *testing.T) {
		msg := ErrorOccurred{Err: nil}
		assert.Nil(t, msg.Err)
	})
}

// TestSettingsLoaded tests the SettingsLoaded message type
func TestSettingsLoaded(t *testing.T) {
	t.Run("with settings", func(t *testing.T) {
		settings := &domain.AppSettings{
			Sheets: domain.SheetsSettings{SpreadsheetID: "sheet-123"},
		}
		msg := SettingsLoaded{Settings: settings}

		require.NotNil(t, msg.Settings)
		assert.Equal(t, "sheet-123", msg.Settings.Sheets.SpreadsheetID)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("failed to load settings")
		msg := SettingsLoaded{Err: err}

		assert.Nil(t, msg.Settings)
		assert.Error(t, msg.Err)
	})
}

// TestSettingsSaved tests the SettingsSaved message type
func TestSettingsSaved(t *testing.T) {
	t.Run("successful save", func(t *testing.T) {
		msg := SettingsSaved{Err: nil}
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("save failed")
		msg := SettingsSaved{Err: err}

		assert.Error(t, msg.Err)
	})
}

// TestQuit tests the Quit message type
func TestQuit(t *testing.T) {
	msg := Quit{}
	// Quit is an empty struct, just verify it can be created
	assert.NotNil(t, msg)
}
