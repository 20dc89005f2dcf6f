package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/pkg/auth"
	"github.com/victornavas/unified-api/pkg/logger"
)

type claimsKey struct{}

// RequireAuth gates a subtree behind a bearer token. Missing tokens are 401,
// invalid or expired ones 403, matching the original API contract.
func RequireAuth(secret string, respond *response.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Fail(w, http.StatusUnauthorized, "No token")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respond.Fail(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, err := auth.Parse(token, secret)
			if err != nil {
				respond.Fail(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			ctx = context.WithValue(ctx, logger.UserIDKey, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims returns the verified token claims, or nil outside RequireAuth.
func Claims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsKey{}).(*auth.Claims)
	return claims
}
