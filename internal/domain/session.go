package domain

import (
	"context"
	"time"
)

// RoleModerator is the only role the access gate grants.
const RoleModerator = "moderator"

// ModeratorSession is the capability passed into moderation calls.
type ModeratorSession struct {
	Subject     string
	IsModerator bool
	ExpiresAt   time.Time
}

// SecretChecker compares a submitted secret against the configured admin secret.
type SecretChecker interface {
	Check(secret string) bool
}

// TokenIssuer issues session tokens for a subject with the given roles.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the session it encodes.
type TokenVerifier interface {
	Verify(token string) (ModeratorSession, error)
}

// AccessGate exchanges the shared admin secret for a moderator session token.
type AccessGate interface {
	Unlock(ctx context.Context, secret string) (token string, err error)
}
