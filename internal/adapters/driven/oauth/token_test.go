package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

func TestExchanger_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "client-id", r.Form.Get("client_id"))
		assert.Equal(t, "client-secret", r.Form.Get("client_secret"))
		assert.Equal(t, "auth-code", r.Form.Get("code"))
		assert.Equal(t, "http://localhost:8400/callback", r.Form.Get("redirect_uri"))
		assert.Equal(t, "verifier", r.Form.Get("code_verifier"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "access-token",
			"refresh_token": "refresh-token",
			"token_type": "Bearer",
			"expires_in": 3600
		}`))
	}))
	t.Cleanup(server.Close)

	exchanger := NewExchangerWithEndpoints(server.URL, server.URL, "client-id", "client-secret")

	token, err := exchanger.Exchange(context.Background(), "auth-code", "verifier", "http://localhost:8400/callback")
	require.NoError(t, err)

	assert.Equal(t, "access-token", token.AccessToken)
	assert.Equal(t, "refresh-token", token.RefreshToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Expiry, 5*time.Second)
}

func TestExchanger_Exchange_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant", "error_description": "Code was already redeemed."}`))
	}))
	t.Cleanup(server.Close)

	exchanger := NewExchangerWithEndpoints(server.URL, server.URL, "client-id", "client-secret")

	_, err := exchanger.Exchange(context.Background(), "stale-code", "verifier", "http://localhost:8400/callback")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenExchangeFailed)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestExchanger_Exchange_MissingClientID(t *testing.T) {
	exchanger := NewExchangerWithEndpoints("http://unused", "http://unused", "", "")

	_, err := exchanger.Exchange(context.Background(), "code", "verifier", "uri")
	assert.ErrorIs(t, err, domain.ErrConfigMissing)
}

func TestExchanger_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "refresh-token", r.Form.Get("refresh_token"))

		// Google omits refresh_token on refresh responses.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "fresh-access-token",
			"token_type": "Bearer",
			"expires_in": 3600
		}`))
	}))
	t.Cleanup(server.Close)

	exchanger := NewExchangerWithEndpoints(server.URL, server.URL, "client-id", "client-secret")

	token, err := exchanger.Refresh(context.Background(), "refresh-token")
	require.NoError(t, err)

	assert.Equal(t, "fresh-access-token", token.AccessToken)
	assert.Empty(t, token.RefreshToken)
}

func TestExchanger_Refresh_NoToken(t *testing.T) {
	exchanger := NewExchangerWithEndpoints("http://unused", "http://unused", "client-id", "client-secret")

	_, err := exchanger.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrTokenRefreshFailed)
}

func TestExchanger_Refresh_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant", "error_description": "Token has been revoked."}`))
	}))
	t.Cleanup(server.Close)

	exchanger := NewExchangerWithEndpoints(server.URL, server.URL, "client-id", "client-secret")

	_, err := exchanger.Refresh(context.Background(), "revoked-token")
	assert.ErrorIs(t, err, domain.ErrTokenRefreshFailed)
}

func TestExchanger_Revoke(t *testing.T) {
	var revoked string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		revoked = r.Form.Get("token")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	exchanger := NewExchangerWithEndpoints(server.URL, server.URL, "client-id", "client-secret")

	require.NoError(t, exchanger.Revoke(context.Background(), "access-token"))
	assert.Equal(t, "access-token", revoked)
}

func TestExchanger_Revoke_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	exchanger := NewExchangerWithEndpoints(server.URL, server.URL, "client-id", "client-secret")

	assert.Error(t, exchanger.Revoke(context.Background(), "unknown-token"))
}
