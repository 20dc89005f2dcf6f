package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/victornavas/unified-api/internal/http/response"
)

// ValidateAPIKey checks the x-api-key header against the per-site key map.
// The site name comes from the {site} URL parameter.
func ValidateAPIKey(keys map[string]string, respond *response.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			site := chi.URLParam(r, "site")

			expected, ok := keys[site]
			if !ok {
				respond.Fail(w, http.StatusBadRequest, "Unknown site")
				return
			}

			if r.Header.Get("x-api-key") != expected {
				respond.Fail(w, http.StatusForbidden, "Invalid API Key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
