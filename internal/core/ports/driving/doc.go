// Package driving defines interfaces that external actors (CLI, TUI,
// HTTP, MCP) use to interact with core services. These are the
// "driving" ports in hexagonal architecture terminology - they drive
// the application.
//
// The console exposes five driving ports: SessionService for sign-in
// and access resolution, ProjectService for the project register,
// ScheduleService for appointments, StorageService for Drive folders
// and uploads, and SettingsService for configuration.
//
// Implementations of these interfaces live in internal/core/services.
package driving
