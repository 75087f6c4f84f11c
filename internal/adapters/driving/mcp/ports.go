package mcp

import (
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Project reads and updates the project list.
	Project driving.ProjectService

	// Schedule plans and lists calendar appointments.
	Schedule driving.ScheduleService

	// Storage provisions Drive folders.
	Storage driving.StorageService

	// Session exposes the signed-in identity.
	Session driving.SessionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Project == nil {
		return ErrMissingProjectService
	}
	// Schedule, Storage and Session are optional; their tools and
	// resources degrade when absent.
	return nil
}
