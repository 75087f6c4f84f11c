package driven

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// AccessDirectory resolves role and page access for signed-in
// identities. The directory is maintained outside the console (a
// back-office concern); this port only reads it.
type AccessDirectory interface {
	// Lookup resolves the profile for an account email.
	// Unknown identities resolve to the guest profile, not an error.
	Lookup(ctx context.Context, email string) (domain.AccessProfile, error)

	// Watch delivers a notification whenever the directory content
	// changes. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan domain.AccessChange, error)
}
