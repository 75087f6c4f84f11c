// Package tui provides the interactive terminal console for the studio.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session manages the sign-in lifecycle. Optional; without it the
	// status bar reports signed out.
	Session driving.SessionService

	// Project reads and writes the project database.
	Project driving.ProjectService

	// Schedule plans and lists calendar appointments.
	Schedule driving.ScheduleService

	// Settings manages the console configuration. Optional; the
	// settings view degrades to an error message when absent.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionService,
	project driving.ProjectService,
	schedule driving.ScheduleService,
) *Ports {
	return &Ports{
		Session:  session,
		Project:  project,
		Schedule: schedule,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Project == nil {
		return ErrMissingProjectService
	}
	if p.Schedule == nil {
		return ErrMissingScheduleService
	}
	return nil
}
