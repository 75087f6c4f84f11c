package domain

import "time"

// Session is an authenticated Google session.
// Created on sign-in, destroyed on sign-out or revocation.
//
// The session is passed to API-calling components explicitly;
// nothing reads token state from package-level variables.
type Session struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Token holds the OAuth tokens issued for this session.
	Token OAuthToken `json:"token"`

	// Profile is the signed-in user's profile.
	// May be empty when the userinfo lookup failed; sign-in still succeeds.
	Profile UserProfile `json:"profile"`

	// CreatedAt is when the session was established.
	CreatedAt time.Time `json:"created_at"`
}

// OAuthToken stores the provider-issued tokens for a session.
type OAuthToken struct {
	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`
	// Expiry is when the access token expires.
	Expiry time.Time `json:"expiry,omitempty"`
}

// UserProfile identifies the signed-in user.
type UserProfile struct {
	// Name is the display name.
	Name string `json:"name,omitempty"`
	// Email is the account email.
	Email string `json:"email,omitempty"`
	// Picture is the profile photo URL.
	Picture string `json:"picture,omitempty"`
}

// IsExpired returns true if the access token has expired.
// A zero expiry means the provider reported no lifetime; the token is
// treated as live until a call rejects it.
func (t OAuthToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}

// IsValid returns true when the session carries a usable access token.
func (s *Session) IsValid() bool {
	return s != nil && s.Token.AccessToken != "" && !s.Token.IsExpired()
}

// NeedsRefresh returns true if the token is expired but refreshable.
func (s *Session) NeedsRefresh() bool {
	return s != nil && s.Token.IsExpired() && s.Token.RefreshToken != ""
}

// IsEmpty returns true when no profile information was resolved.
func (p UserProfile) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Picture == ""
}
