package driven

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// AuthFlow runs the interactive step of the authorization-code grant:
// it presents the provider's consent page and blocks until the
// authorization code arrives.
type AuthFlow interface {
	// Authorize returns the authorization code and the redirect URI it
	// was delivered to. The challenge is the PKCE S256 challenge; the
	// state binds the callback to this request.
	Authorize(ctx context.Context, challenge, state string) (code, redirectURI string, err error)
}

// TokenExchanger talks to the provider's token and revocation
// endpoints.
type TokenExchanger interface {
	// Exchange swaps an authorization code (plus its PKCE verifier and
	// the redirect URI the code was issued for) for tokens.
	Exchange(ctx context.Context, code, verifier, redirectURI string) (domain.OAuthToken, error)

	// Refresh obtains a new access token from a refresh token.
	Refresh(ctx context.Context, refreshToken string) (domain.OAuthToken, error)

	// Revoke invalidates a token server-side.
	Revoke(ctx context.Context, token string) error
}
