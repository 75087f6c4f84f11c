package auth

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

// Ensure NullTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*NullTokenProvider)(nil)

// NullTokenProvider is for wiring that requires no authentication.
// Used by the demo composition where every adapter is in-memory.
type NullTokenProvider struct{}

// NewNullTokenProvider creates a token provider for no-auth wiring.
func NewNullTokenProvider() *NullTokenProvider {
	return &NullTokenProvider{}
}

// GetToken returns an empty string since no authentication is needed.
func (p *NullTokenProvider) GetToken(_ context.Context) (string, error) {
	return "", nil
}

// IsAuthenticated always returns true since no-auth is always "authenticated".
func (p *NullTokenProvider) IsAuthenticated() bool {
	return true
}

// Invalidate is a no-op; there is nothing cached.
func (p *NullTokenProvider) Invalidate() {}
