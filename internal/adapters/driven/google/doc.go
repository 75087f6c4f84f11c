// Package google implements the Workspace-backed driven adapters.
//
// This package contains the production implementations of the
// SpreadsheetClient, CalendarClient, FileStorageClient and IdentityClient
// ports, plus the shared infrastructure they sit on:
//   - Bootstrap for one-time construction of the Sheets, Calendar and
//     Drive API clients, collapsing concurrent first calls into a single
//     initialisation attempt
//   - TokenSource adapter to bridge the TokenProvider port to
//     oauth2.TokenSource
//   - Error mapping from googleapi status codes (401, 403, 404, 429) to
//     the domain error taxonomy
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Adapters share one Bootstrap and build their API clients lazily on
// first use:
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	boot := google.NewBootstrap(google.DefaultBuild(clientID, ts))
//	sheets := google.NewSheetsAdapter(boot, spreadsheetID)
//
// # OAuth2 Scopes
//
// The console requests these scopes:
//   - https://www.googleapis.com/auth/userinfo.email (non-sensitive)
//   - https://www.googleapis.com/auth/userinfo.profile (non-sensitive)
//   - https://www.googleapis.com/auth/spreadsheets (sensitive)
//   - https://www.googleapis.com/auth/drive.file (recommended)
//   - https://www.googleapis.com/auth/calendar.events (sensitive)
//
// For user-created internal apps, sensitive scopes don't require verification.
package google
