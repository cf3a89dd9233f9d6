package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "feriascalendar/internal/delivery/http/helpers"
	"feriascalendar/internal/domain"
)

type contextKey string

const sessionKey contextKey = "moderatorSession"

// SetSession returns a context carrying the moderator session. Used by auth middleware.
func SetSession(ctx context.Context, session domain.ModeratorSession) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the moderator session from the context, if present.
func SessionFromContext(ctx context.Context) (domain.ModeratorSession, bool) {
	session, ok := ctx.Value(sessionKey).(domain.ModeratorSession)
	return session, ok
}

// RequireSession returns a wrapper that validates the Bearer token and sets the session in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
// Whether the session may moderate is decided by the moderation service.
func RequireSession(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			session, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetSession(r.Context(), session))
			next(w, r)
		}
	}
}
