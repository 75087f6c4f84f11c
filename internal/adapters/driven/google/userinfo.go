package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// userInfo is the provider's profile payload.
type userInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// IdentityAdapter implements the IdentityClient port against the
// Google userinfo endpoint.
type IdentityAdapter struct {
	endpoint string
	client   *http.Client
}

var _ driven.IdentityClient = (*IdentityAdapter)(nil)

// NewIdentityAdapter creates an identity adapter against the production
// userinfo endpoint.
func NewIdentityAdapter() *IdentityAdapter {
	return &IdentityAdapter{
		endpoint: defaultUserInfoURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewIdentityAdapterWithEndpoint creates an identity adapter against a
// custom endpoint. Used in tests.
func NewIdentityAdapterWithEndpoint(endpoint string) *IdentityAdapter {
	return &IdentityAdapter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// UserInfo fetches the signed-in user's profile using an access token.
func (a *IdentityAdapter) UserInfo(ctx context.Context, accessToken string) (domain.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.endpoint, http.NoBody)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.UserProfile{}, fmt.Errorf("%w: user info request rejected", domain.ErrAuthExpired)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.UserProfile{}, fmt.Errorf("%w: user info request failed with status %d", domain.ErrRemote, resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return domain.UserProfile{}, fmt.Errorf("decode user info: %w", err)
	}

	return domain.UserProfile{
		Name:    info.Name,
		Email:   info.Email,
		Picture: info.Picture,
	}, nil
}
