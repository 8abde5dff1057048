package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/templui/fittrack/internal/metrics"
)

// Metrics records request counts, latencies and in-flight requests. Routes
// are labelled with the mux pattern ("GET /app/goals/{id}/progress-dialog")
// so ids don't blow up label cardinality.
func Metrics(mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			_, route := mux.Handler(r)
			if route == "" {
				route = "unmatched"
			}

			metrics.ActiveRequests.Inc()
			defer metrics.ActiveRequests.Dec()

			start := time.Now()
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// BasicAuth protects next with a single user/password pair. With no user
// configured the endpoint is disabled and answers 404.
func BasicAuth(user, pass string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user == "" {
			http.NotFound(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 ||
			subtle.ConstantTimeCompare([]byte(p), []byte(pass)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
