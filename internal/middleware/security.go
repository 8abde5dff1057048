package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/templui/fittrack/internal/ctxkeys"
)

// htmx is loaded from this CDN by the layout.
const scriptCDN = "https://unpkg.com"

// SecurityHeaders sets the CSP (scripts limited to self, the CDN and the
// request nonce) and the usual hardening headers. Runs after NonceMiddleware.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy(GetNonce(r.Context())))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

func contentSecurityPolicy(nonce string) string {
	script := "script-src 'self' " + scriptCDN
	if nonce != "" {
		script += fmt.Sprintf(" 'nonce-%s'", nonce)
	}

	directives := []string{
		"default-src 'self'",
		script,
		// Bar charts size themselves with inline style attributes.
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
		"base-uri 'self'",
	}
	return strings.Join(directives, "; ")
}
