// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TokenProvider: Valid access tokens for Google API calls
//   - TokenExchanger: Authorization-code exchange, refresh and revocation
//   - AuthFlow: The interactive consent step of the code grant
//   - IdentityClient: Userinfo lookup for the signed-in account
//   - SpreadsheetClient: Whole-sheet grid read/replace (the project store)
//   - CalendarClient: Event creation and month listing
//   - FileStorageClient: Drive folder provisioning and uploads
//   - SessionStore: Session persistence across restarts
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AccessDirectory: Role/page access resolution. Without it every
//     identity resolves to the guest profile.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
