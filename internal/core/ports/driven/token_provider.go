package driven

import "context"

// TokenProvider provides access tokens for authenticated API calls.
// Implementations handle token refresh transparently: when the stored
// session is expired but refreshable, a refresh happens before the
// token is returned and the refreshed session is persisted.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns domain.ErrAuthRequired when no session exists and
	// domain.ErrAuthExpired when the session cannot be refreshed.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if a usable session is available.
	IsAuthenticated() bool

	// Invalidate clears any cached token so the next GetToken re-reads
	// the session store. Called after sign-in and sign-out.
	Invalidate()
}
