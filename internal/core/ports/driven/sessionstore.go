package driven

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// SessionStore persists the single signed-in session across process
// restarts. The console never holds more than one session at a time;
// saving replaces any previous one.
type SessionStore interface {
	// Save stores the session, replacing an existing one.
	Save(ctx context.Context, session *domain.Session) error

	// Load retrieves the stored session.
	// Returns domain.ErrNotFound when no session is stored.
	Load(ctx context.Context) (*domain.Session, error)

	// Clear removes the stored session. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}
