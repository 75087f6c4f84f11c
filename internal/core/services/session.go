package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages the sign-in lifecycle.
// It owns the one session the console holds at a time; API-calling
// adapters obtain tokens through the TokenProvider, never from here.
type SessionService struct {
	sessions  driven.SessionStore
	flow      driven.AuthFlow
	exchanger driven.TokenExchanger
	identity  driven.IdentityClient
	tokens    driven.TokenProvider
	directory driven.AccessDirectory

	mu      sync.RWMutex
	current *domain.Session
}

// NewSessionService creates a new session service.
// The directory may be nil; Access then resolves guest profiles.
func NewSessionService(
	sessions driven.SessionStore,
	flow driven.AuthFlow,
	exchanger driven.TokenExchanger,
	identity driven.IdentityClient,
	tokens driven.TokenProvider,
	directory driven.AccessDirectory,
) *SessionService {
	return &SessionService{
		sessions:  sessions,
		flow:      flow,
		exchanger: exchanger,
		identity:  identity,
		tokens:    tokens,
		directory: directory,
	}
}

// Initialize attempts to restore a persisted session and reports
// whether a valid session exists. It never fails: restore errors are
// logged and degrade to signed-out.
func (s *SessionService) Initialize(ctx context.Context) bool {
	if s.sessions == nil {
		return false
	}

	session, err := s.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Session restore failed: %v", err)
		}
		return false
	}
	if !session.IsValid() && !session.NeedsRefresh() {
		logger.Debug("Stored session is expired, sign-in required")
		return false
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	if s.tokens != nil {
		s.tokens.Invalidate()
	}
	logger.Debug("Restored session for %s", session.Profile.Email)
	return true
}

// SignIn runs the interactive consent flow and establishes a session.
func (s *SessionService) SignIn(ctx context.Context) (*domain.Session, error) {
	if s.flow == nil || s.exchanger == nil {
		return nil, domain.ErrNotImplemented
	}

	verifier, err := generateCodeVerifier()
	if err != nil {
		return nil, fmt.Errorf("generate code verifier: %w", err)
	}
	challenge := generateCodeChallenge(verifier)
	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}

	code, redirectURI, err := s.flow.Authorize(ctx, challenge, state)
	if err != nil {
		return nil, fmt.Errorf("authorize: %w", err)
	}

	token, err := s.exchanger.Exchange(ctx, code, verifier, redirectURI)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		Token:     token,
		CreatedAt: time.Now(),
	}

	// Token acquisition is the critical operation; profile enrichment
	// is best-effort and a failure leaves the profile empty.
	if s.identity != nil {
		profile, err := s.identity.UserInfo(ctx, token.AccessToken)
		if err != nil {
			logger.Warn("Profile lookup failed: %v", err)
		} else {
			session.Profile = profile
		}
	}

	if s.sessions != nil {
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	if s.tokens != nil {
		s.tokens.Invalidate()
	}
	return session, nil
}

// SignOut revokes the token server-side and clears local state.
// Revocation failures are logged and swallowed so the local session
// always clears.
func (s *SessionService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	session := s.current
	s.current = nil
	s.mu.Unlock()

	if session == nil && s.sessions != nil {
		session, _ = s.sessions.Load(ctx)
	}

	if session != nil && session.Token.AccessToken != "" && s.exchanger != nil {
		if err := s.exchanger.Revoke(ctx, session.Token.AccessToken); err != nil {
			logger.Warn("Token revocation failed: %v", err)
		}
	}

	if s.tokens != nil {
		s.tokens.Invalidate()
	}
	if s.sessions != nil {
		if err := s.sessions.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}

// Current returns the active session.
func (s *SessionService) Current() (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrAuthRequired
	}
	copied := *s.current
	return &copied, nil
}

// Access resolves the access profile for the signed-in identity.
func (s *SessionService) Access(ctx context.Context) (domain.AccessProfile, error) {
	session, err := s.Current()
	if err != nil {
		return domain.AccessProfile{}, err
	}
	email := session.Profile.Email
	if s.directory == nil || email == "" {
		return domain.AccessProfile{Email: email, Role: domain.RoleGuest}, nil
	}
	return s.directory.Lookup(ctx, email)
}
