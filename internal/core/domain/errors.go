package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or missing user input.
	// Raised before any remote call is attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Configuration Errors.

	// ErrConfigMissing indicates a required configuration value is absent.
	// Fatal: callers fail fast rather than fall through to a remote call,
	// and the message names the missing key.
	ErrConfigMissing = errors.New("configuration missing")

	// Authentication Errors.

	// ErrAuthRequired indicates no signed-in session exists.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the session has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrAuthInvalid indicates the provider rejected the credentials.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrTokenExchangeFailed indicates the authorization-code exchange failed.
	ErrTokenExchangeFailed = errors.New("token exchange failed")

	// ErrTokenRefreshFailed indicates token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// Remote Errors.

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrRemote indicates a remote call was rejected or failed in transit.
	// Callers surface it to the operator and leave local state unchanged.
	ErrRemote = errors.New("remote call failed")
)
