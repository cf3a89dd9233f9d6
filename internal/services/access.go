package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feriascalendar/internal/domain"
)

// ModeratorSubject is the token subject for sessions unlocked with the shared secret.
const ModeratorSubject = "moderator"

type accessGate struct {
	checker domain.SecretChecker
	issuer  domain.TokenIssuer
	expiry  time.Duration
	logger  *slog.Logger
}

// NewAccessGate returns the gate that turns the shared admin secret into a session token.
func NewAccessGate(checker domain.SecretChecker, issuer domain.TokenIssuer, expiry time.Duration, logger *slog.Logger) domain.AccessGate {
	return &accessGate{
		checker: checker,
		issuer:  issuer,
		expiry:  expiry,
		logger:  logger,
	}
}

func (g *accessGate) Unlock(ctx context.Context, secret string) (string, error) {
	if secret == "" || !g.checker.Check(secret) {
		g.logger.WarnContext(ctx, "moderation unlock rejected")
		return "", domain.ErrInvalidSecret
	}
	token, err := g.issuer.Issue(ModeratorSubject, []string{domain.RoleModerator}, g.expiry)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}
