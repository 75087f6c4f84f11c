package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// 48 random bytes encode to a 64-character verifier, inside the
// 43-128 character window RFC 7636 allows.
const verifierBytes = 48

// randomURLToken returns n random bytes as unpadded base64url.
func randomURLToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// generateCodeVerifier creates the PKCE code verifier for one sign-in attempt.
func generateCodeVerifier() (string, error) {
	return randomURLToken(verifierBytes)
}

// generateCodeChallenge derives the S256 challenge sent in the
// authorization request. Google rejects the "plain" method.
func generateCodeChallenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// generateState creates the CSRF state parameter.
func generateState() (string, error) {
	return randomURLToken(32)
}
