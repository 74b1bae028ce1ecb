package token

import (
	"context"
	"net/http"
	"strings"

	"station-service/internal/httpx"
)

type ctxClaimsKey struct{}

// NewContext returns a copy of ctx carrying the request's identity claims.
func NewContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxClaimsKey{}, claims)
}

// FromContext returns the identity claims stored by RequireAuth, or nil when
// the request carried no valid token.
func FromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ctxClaimsKey{}).(*Claims)
	return claims
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved claims in the request context for the handlers downstream.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid Authorization header")
			return
		}

		claims := m.Validate(parts[1])
		if claims == nil {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), claims)))
	})
}
