// Package oauth implements token exchange against the Google OAuth endpoints.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

// Google OAuth 2.0 endpoints.
const (
	GoogleTokenURL  = "https://oauth2.googleapis.com/token"
	GoogleRevokeURL = "https://oauth2.googleapis.com/revoke"
)

// TokenResponse holds the response from a token exchange.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	Expiry       time.Time `json:"-"`
}

// Exchanger implements the TokenExchanger port against the Google
// token and revocation endpoints.
type Exchanger struct {
	tokenURL     string
	revokeURL    string
	clientID     string
	clientSecret string
	client       *http.Client
}

var _ driven.TokenExchanger = (*Exchanger)(nil)

// NewExchanger creates an exchanger against the production endpoints.
func NewExchanger(clientID, clientSecret string) *Exchanger {
	return NewExchangerWithEndpoints(GoogleTokenURL, GoogleRevokeURL, clientID, clientSecret)
}

// NewExchangerWithEndpoints creates an exchanger against custom
// endpoints. Used in tests.
func NewExchangerWithEndpoints(tokenURL, revokeURL, clientID, clientSecret string) *Exchanger {
	return &Exchanger{
		tokenURL:     tokenURL,
		revokeURL:    revokeURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Exchange swaps an authorization code for tokens.
func (e *Exchanger) Exchange(ctx context.Context, code, verifier, redirectURI string) (domain.OAuthToken, error) {
	if e.clientID == "" {
		return domain.OAuthToken{}, fmt.Errorf("%w: google.client_id", domain.ErrConfigMissing)
	}

	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", e.clientID)
	data.Set("client_secret", e.clientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", redirectURI)
	if verifier != "" {
		data.Set("code_verifier", verifier)
	}

	resp, err := e.postForm(ctx, e.tokenURL, data, domain.ErrTokenExchangeFailed)
	if err != nil {
		return domain.OAuthToken{}, err
	}
	return toDomainToken(resp), nil
}

// Refresh obtains a fresh access token from a refresh token. Google
// omits the refresh token in the response; callers keep the old one.
func (e *Exchanger) Refresh(ctx context.Context, refreshToken string) (domain.OAuthToken, error) {
	if refreshToken == "" {
		return domain.OAuthToken{}, fmt.Errorf("%w: no refresh token", domain.ErrTokenRefreshFailed)
	}

	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("client_id", e.clientID)
	data.Set("client_secret", e.clientSecret)
	data.Set("refresh_token", refreshToken)

	resp, err := e.postForm(ctx, e.tokenURL, data, domain.ErrTokenRefreshFailed)
	if err != nil {
		return domain.OAuthToken{}, err
	}
	return toDomainToken(resp), nil
}

// Revoke invalidates a token at the provider. Google accepts either an
// access or a refresh token and revokes the whole grant.
func (e *Exchanger) Revoke(ctx context.Context, token string) error {
	data := url.Values{}
	data.Set("token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.revokeURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("revoke request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke request failed with status %d", resp.StatusCode)
	}
	return nil
}

// postForm posts a token-endpoint form and decodes the response.
// Provider errors wrap the given sentinel with the provider's error
// code and description.
func (e *Exchanger) postForm(ctx context.Context, endpoint string, data url.Values, sentinel error) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%w: %s - %s", sentinel, errResp.Error, errResp.Description)
		}
		return nil, fmt.Errorf("%w: status %d", sentinel, resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	if tokenResp.ExpiresIn > 0 {
		tokenResp.Expiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	}

	return &tokenResp, nil
}

func toDomainToken(resp *TokenResponse) domain.OAuthToken {
	return domain.OAuthToken{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		Expiry:       resp.Expiry,
	}
}
