package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
)

// InternalAuthHeader carries the shared secret for operator routes. These
// routes are only reachable from the site backend, never from browsers.
const InternalAuthHeader = "X-Internal-Token"

// InternalAuth guards operator routes with a shared-secret header.
func InternalAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(InternalAuthHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
