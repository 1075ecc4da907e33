package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/glowtress/booking-service/internal/api/handlers"
)

// AdminKeyHeader carries the admin API key on protected routes.
const AdminKeyHeader = "X-Admin-Key"

const msgUnauthorized = "missing or invalid admin API key"

// AdminAuth guards the admin routes with a shared API key.
func AdminAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
