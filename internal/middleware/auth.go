package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-content-api/internal/metrics"
	"go-content-api/internal/model"
)

type tokenValidator interface {
	ValidateAccessToken(tokenString string) (*model.AuthClaims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

type AuthMiddleware struct {
	validator tokenValidator
	metrics   *metrics.Metrics
}

func NewAuthMiddleware(validator tokenValidator, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{validator: validator, metrics: m}
}

// RequireAuth rejects the request with 401 unless it carries a valid
// "Authorization: Bearer <token>" header. Handlers behind it can rely on
// ClaimsFromContext returning the caller.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			m.metrics.AuthRejected("missing_header")
			writeError(w, http.StatusUnauthorized, "No authentication headers provided")
			return
		}

		token := bearerToken(header)
		if token == "" {
			m.metrics.AuthRejected("missing_token")
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := m.validator.ValidateAccessToken(token)
		if err != nil {
			m.metrics.AuthRejected("invalid_token")
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClaimsFromContext(ctx context.Context) (*model.AuthClaims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*model.AuthClaims)
	return claims, ok && claims != nil
}

// WithClaims is used by tests that exercise handlers without the guard.
func WithClaims(ctx context.Context, claims *model.AuthClaims) context.Context {
	return context.WithValue(ctx, authClaimsContextKey, claims)
}

// bearerToken returns the credential of a Bearer header, or "" when the
// scheme is something else or the credential is missing.
func bearerToken(header string) string {
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
