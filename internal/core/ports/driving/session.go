package driving

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// SessionService manages the sign-in lifecycle.
// Every surface (CLI, TUI, MCP) goes through this service; no token
// state lives outside the session it manages.
type SessionService interface {
	// Initialize attempts to restore a persisted session and reports
	// whether a valid session exists. It never fails: restore errors
	// are logged and degrade to signed-out.
	Initialize(ctx context.Context) bool

	// SignIn runs the interactive consent flow and establishes a
	// session. Profile enrichment is best-effort: a failed userinfo
	// lookup yields a session with an empty profile, not an error.
	SignIn(ctx context.Context) (*domain.Session, error)

	// SignOut revokes the token server-side (best-effort, failures
	// logged) and clears local session state unconditionally.
	SignOut(ctx context.Context) error

	// Current returns the active session.
	// Returns domain.ErrAuthRequired when signed out.
	Current() (*domain.Session, error)

	// Access resolves the access profile for the signed-in identity.
	Access(ctx context.Context) (domain.AccessProfile, error)
}
