package driven

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// IdentityClient resolves the profile behind an access token.
type IdentityClient interface {
	// UserInfo fetches the signed-in user's profile from the
	// provider's userinfo endpoint.
	UserInfo(ctx context.Context, accessToken string) (domain.UserProfile, error)
}
