package middleware

import (
	"net/http"

	"github.com/templui/fittrack/internal/ctxkeys"
)

// WithURLPath stores the request path for the sidebar's active item.
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxkeys.WithURLPath(r.Context(), r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
