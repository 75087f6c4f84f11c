// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The console is composed of five services:
//
//   - SessionService: Google sign-in, session restore and access lookup
//   - ProjectService: the project register backed by a spreadsheet
//   - ScheduleService: appointment planning and month listings
//   - StorageService: Drive folder provisioning and file uploads
//   - SettingsService: configuration reads, writes and demo toggling
//
// Services hold no Google SDK types. Everything infrastructure-shaped
// arrives through a driven port, so every service is testable against
// the in-memory adapters.
package services
