// Package auth implements token providers over the persisted session.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

// Ensure SessionTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*SessionTokenProvider)(nil)

// SessionTokenProvider provides OAuth access tokens with automatic
// refresh. Tokens come from the persisted session; refreshed tokens are
// written back so later processes reuse them.
type SessionTokenProvider struct {
	sessions  driven.SessionStore
	exchanger driven.TokenExchanger

	mu            sync.RWMutex
	cachedToken   string
	cacheExpiry   time.Time
	refreshBuffer time.Duration
}

// NewSessionTokenProvider creates a token provider over the session
// store. The exchanger may be nil; expired tokens then fail instead of
// refreshing.
func NewSessionTokenProvider(sessions driven.SessionStore, exchanger driven.TokenExchanger) *SessionTokenProvider {
	return &SessionTokenProvider{
		sessions:      sessions,
		exchanger:     exchanger,
		refreshBuffer: 5 * time.Minute,
	}
}

// GetToken returns a valid access token, refreshing if necessary.
func (p *SessionTokenProvider) GetToken(ctx context.Context) (string, error) {
	// Fast path: check cache with read lock
	p.mu.RLock()
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		token := p.cachedToken
		p.mu.RUnlock()
		return token, nil
	}
	p.mu.RUnlock()

	// Slow path: need refresh, acquire write lock
	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		return p.cachedToken, nil
	}

	session, err := p.sessions.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: no stored session", domain.ErrAuthRequired)
	}
	if session.Token.AccessToken == "" {
		return "", fmt.Errorf("%w: session has no access token", domain.ErrAuthRequired)
	}

	// Check if we need to refresh
	token := session.Token
	needsRefresh := token.IsExpired()
	if !token.Expiry.IsZero() {
		needsRefresh = needsRefresh || time.Until(token.Expiry) < p.refreshBuffer
	}

	if needsRefresh {
		if p.exchanger == nil || token.RefreshToken == "" {
			return "", fmt.Errorf("%w: access token expired and not refreshable", domain.ErrAuthExpired)
		}

		fresh, err := p.exchanger.Refresh(ctx, token.RefreshToken)
		if err != nil {
			return "", fmt.Errorf("refresh token: %w", err)
		}

		// Google omits the refresh token on refresh; keep the old one.
		token.AccessToken = fresh.AccessToken
		if fresh.RefreshToken != "" {
			token.RefreshToken = fresh.RefreshToken
		}
		token.Expiry = fresh.Expiry
		if fresh.TokenType != "" {
			token.TokenType = fresh.TokenType
		}

		session.Token = token
		if err := p.sessions.Save(ctx, session); err != nil {
			return "", fmt.Errorf("save refreshed session: %w", err)
		}
	}

	// Cache the token
	p.cachedToken = token.AccessToken

	// Set cache expiry
	if !token.Expiry.IsZero() {
		p.cacheExpiry = token.Expiry.Add(-p.refreshBuffer)
	} else {
		p.cacheExpiry = time.Now().Add(1 * time.Hour)
	}

	return p.cachedToken, nil
}

// IsAuthenticated returns true if a usable token exists.
func (p *SessionTokenProvider) IsAuthenticated() bool {
	p.mu.RLock()
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		p.mu.RUnlock()
		return true
	}
	p.mu.RUnlock()

	session, err := p.sessions.Load(context.Background())
	if err != nil {
		return false
	}
	return session.Token.AccessToken != ""
}

// Invalidate clears the cached token. Called after sign-in, sign-out
// and credential changes.
func (p *SessionTokenProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cachedToken = ""
	p.cacheExpiry = time.Time{}
}
