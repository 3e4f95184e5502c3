package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/kiranshivaraju/shoppulse/internal/api/response"
	"github.com/kiranshivaraju/shoppulse/internal/auth"
)

// TokenAuth guards read endpoints with the login token. Signature and expiry
// are checked; the embedded email is not cross-checked against the requested
// tenant (any valid token may read any tenant — a documented gap, carried
// over deliberately rather than fixed in this layer).
type TokenAuth struct {
	secret string
}

// NewTokenAuth creates a new TokenAuth middleware.
func NewTokenAuth(secret string) *TokenAuth {
	return &TokenAuth{secret: secret}
}

// Authenticate validates the Bearer token and sets the token email in the
// request context. Missing, malformed, and expired tokens all collapse to
// a single 401; the distinction is logged, not exposed.
func (a *TokenAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearerToken(r)
		if raw == "" {
			response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
			return
		}

		claims, err := auth.ValidateToken(raw, a.secret)
		if err != nil {
			slog.Debug("token rejected", "path", r.URL.Path, "error", err)
			response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
			return
		}

		r = r.WithContext(SetTokenEmail(r.Context(), claims.Email))
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
