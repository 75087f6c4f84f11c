// Package domain defines the core business entities for the Senteng
// studio console.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Session: An authenticated Google session with a user profile
//   - Record: An ordered column→value mapping backing one sheet row
//   - Project: A typed view over a project Record
//   - ScheduleEvent: A calendar event planned by the studio
//   - AccessProfile: Role and page access for a signed-in identity
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
