package services

import "errors"

// Domain errors surfaced by the auth subsystem. Handlers translate these into
// HTTP statuses; storage-specific errors never cross the service boundary.
var (
	// ErrUnauthorized covers every refresh/logout rejection: malformed,
	// expired, wrong-type and revoked tokens all collapse into it so callers
	// cannot probe which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenAlreadyRevoked reports a second revocation of the same token.
	// Logout is deliberately not idempotent; duplicates are a conflict.
	ErrTokenAlreadyRevoked = errors.New("token already revoked")

	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
	ErrUserNotFound  = errors.New("user not found")

	// Storage failures. A failed revocation check must never be read as
	// "the token is clean".
	ErrRevocationCheckFailed   = errors.New("failed to check token revocation")
	ErrRevocationSaveFailed    = errors.New("failed to save revoked token")
	ErrRevocationCleanupFailed = errors.New("failed to clean up revoked tokens")
	ErrUserSaveFailed          = errors.New("failed to create user")
	ErrUserLookupFailed        = errors.New("failed to find user")
)
