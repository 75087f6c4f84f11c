package oauth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// GoogleAuthURL is Google's OAuth 2.0 authorization endpoint.
const GoogleAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"

// Scopes requested on sign-in: identity for the console header, the
// project spreadsheet, console-created Drive files, calendar events.
var Scopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/calendar.events",
}

// Port range for the loopback callback listener. The Google OAuth
// client must list these redirect URIs.
const (
	callbackPortStart = 8410
	callbackPortEnd   = 8420
)

// DefaultAuthorizeTimeout bounds how long the flow waits for the
// operator to finish the consent page.
const DefaultAuthorizeTimeout = 5 * time.Minute

// Ensure BrowserFlow implements the interface.
var _ driven.AuthFlow = (*BrowserFlow)(nil)

// BrowserFlow opens the Google consent page in the operator's browser
// and collects the authorization code on a loopback callback server.
type BrowserFlow struct {
	clientID    string
	authURL     string
	scopes      []string
	timeout     time.Duration
	openBrowser func(string) error
}

// NewBrowserFlow creates a flow for the given OAuth client ID.
func NewBrowserFlow(clientID string) *BrowserFlow {
	return &BrowserFlow{
		clientID:    clientID,
		authURL:     GoogleAuthURL,
		scopes:      Scopes,
		timeout:     DefaultAuthorizeTimeout,
		openBrowser: OpenBrowser,
	}
}

// Authorize runs the interactive grant and returns the authorization
// code plus the redirect URI it was delivered to.
func (f *BrowserFlow) Authorize(ctx context.Context, challenge, state string) (string, string, error) {
	if f.clientID == "" {
		return "", "", fmt.Errorf("%w: google.client_id", domain.ErrConfigMissing)
	}

	port, err := FindAvailablePort(callbackPortStart, callbackPortEnd)
	if err != nil {
		return "", "", err
	}

	server := NewCallbackServer(port, state)
	if err := server.Start(); err != nil {
		return "", "", err
	}
	defer server.Stop()

	authURL := f.buildAuthURL(server.RedirectURI(), challenge, state)
	logger.Debug("Opening browser for Google sign-in, callback on port %d", server.Port())
	if err := f.openBrowser(authURL); err != nil {
		logger.Warn("Could not open browser: %v", err)
		fmt.Printf("Open this URL to sign in:\n\n  %s\n\n", authURL)
	}

	code, err := server.WaitForCode(ctx, f.timeout)
	if err != nil {
		return "", "", err
	}
	return code, server.RedirectURI(), nil
}

// buildAuthURL constructs the consent page URL.
// access_type=offline plus prompt=consent makes Google issue a refresh
// token on repeat grants, not only the first.
func (f *BrowserFlow) buildAuthURL(redirectURI, challenge, state string) string {
	params := url.Values{
		"client_id":             {f.clientID},
		"redirect_uri":          {redirectURI},
		"response_type":         {"code"},
		"scope":                 {strings.Join(f.scopes, " ")},
		"state":                 {state},
		"code_challenge":        {challenge},
		"code_challenge_method": {"S256"},
		"access_type":           {"offline"},
		"prompt":                {"consent"},
	}
	return f.authURL + "?" + params.Encode()
}
