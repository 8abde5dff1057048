package middleware

import (
	"net/http"

	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/ctxkeys"
)

// Config puts the sanitized configuration (no API keys, no connection
// strings) into the request context for handlers and layouts.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
