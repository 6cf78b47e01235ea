package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds every request's context. Handlers thread the
// context down to the kv and kafka clients, so a stuck backend cannot pin
// a request forever.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
