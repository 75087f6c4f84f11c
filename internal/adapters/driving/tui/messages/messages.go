// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewProjects is the project list view.
	ViewProjects
	// ViewSchedule is the calendar month view.
	ViewSchedule
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewProjects:
		return "projects"
	case ViewSchedule:
		return "schedule"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SessionLoaded carries the signed-in identity and its access profile.
// A nil Session means signed out.
type SessionLoaded struct {
	Session *domain.Session
	Access  domain.AccessProfile
	Err     error
}

// ProjectsLoaded carries the project list from the sheet.
type ProjectsLoaded struct {
	Projects []domain.Project
	Err      error
}

// ProjectStatusChanged signals a project status update completed.
type ProjectStatusChanged struct {
	ID     string
	Status string
	Err    error
}

// ScheduleLoaded carries one month's appointments.
type ScheduleLoaded struct {
	Month  string
	Events []domain.ScheduleEvent
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
