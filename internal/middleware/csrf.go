package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/templui/fittrack/internal/ctxkeys"
)

const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
	csrfHeader     = "X-CSRF-Token"
	csrfTokenLen   = 32
)

// CSRFProtection issues a token cookie on every request and requires it back
// (X-CSRF-Token header, which the layout sets for htmx, or a form field) on
// state-changing methods.
func CSRFProtection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := csrfToken(w, r)
		ctx := ctxkeys.WithCSRFToken(r.Context(), token)

		if !isSafeMethod(r.Method) {
			submitted := r.Header.Get(csrfHeader)
			if submitted == "" {
				submitted = r.PostFormValue(csrfFormField)
			}
			if !validCSRFToken(token, submitted) {
				slog.Warn("csrf validation failed",
					"path", r.URL.Path,
					"method", r.Method,
					"ip", getClientIP(r),
				)
				http.Error(w, "Invalid CSRF token", http.StatusForbidden)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// csrfToken returns the token from the request cookie, setting a fresh one
// when it is missing or malformed.
func csrfToken(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err == nil && len(cookie.Value) == base64.RawURLEncoding.EncodedLen(csrfTokenLen) {
		return cookie.Value
	}

	token := generateCSRFToken()
	cfg := ctxkeys.Config(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg != nil && cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	return token
}

func generateCSRFToken() string {
	b := make([]byte, csrfTokenLen)
	_, err := rand.Read(b)
	if err != nil {
		panic("failed to generate csrf token: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func validCSRFToken(expected, actual string) bool {
	if expected == "" || actual == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
