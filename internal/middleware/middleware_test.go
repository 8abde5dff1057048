package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/ctxkeys"
	"github.com/templui/fittrack/internal/metrics"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestChainRunsInOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(okHandler), mark("a"), mark("b"), mark("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestConfigStoresSanitizedConfig(t *testing.T) {
	cfg := &config.Config{AppName: "FitTrack", AppEnv: "development", ResendAPIKey: "secret"}

	var got *config.Config
	h := Config(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Config(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, got)
	assert.Equal(t, "FitTrack", got.AppName)
	assert.Empty(t, got.ResendAPIKey)
}

func TestCSRFProtection(t *testing.T) {
	var token string
	h := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = ctxkeys.CSRFToken(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// GET issues a token cookie.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/goals", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, csrfCookieName, cookie.Name)
	assert.Equal(t, cookie.Value, token)

	t.Run("post without token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/app/goals", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("post with wrong token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/app/goals", nil)
		req.AddCookie(cookie)
		req.Header.Set(csrfHeader, strings.Repeat("x", len(cookie.Value)))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("header token is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/app/goals/1/progress", nil)
		req.AddCookie(cookie)
		req.Header.Set(csrfHeader, cookie.Value)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("form token is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/app/settings/units", strings.NewReader("csrf_token="+cookie.Value))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNonceAndSecurityHeaders(t *testing.T) {
	var templNonce string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		templNonce = templ.GetNonce(r.Context())
	}), NonceMiddleware, SecurityHeaders)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, templNonce)
	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'nonce-"+templNonce+"'")
	assert.Contains(t, csp, "frame-ancestors 'none'")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeadersHSTSInProduction(t *testing.T) {
	h := Chain(http.HandlerFunc(okHandler), Config(&config.Config{AppEnv: "production"}), SecurityHeaders)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestWithURLPath(t *testing.T) {
	var path string
	h := WithURLPath(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = ctxkeys.URLPath(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app/goals?tab=all", nil))

	assert.Equal(t, "/app/goals", path)
}

func TestRateLimit(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	h := RateLimit(limiter, nil)(okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/app/ai/workout-plan", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Other clients have their own bucket.
	req := httptest.NewRequest(http.MethodPost, "/app/ai/workout-plan", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitRejectedHandler(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)
	called := false
	h := RateLimit(limiter, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})(okHandler)

	for range 2 {
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	}
	assert.True(t, called)
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := &RateLimiter{visitors: map[string]*visitor{}, rps: 1, burst: 1}
	limiter.Allow("1.1.1.1")
	limiter.Allow("2.2.2.2")
	limiter.visitors["1.1.1.1"].lastSeen = time.Now().Add(-time.Hour)

	limiter.cleanup(time.Now())

	assert.NotContains(t, limiter.visitors, "1.1.1.1")
	assert.Contains(t, limiter.visitors, "2.2.2.2")
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "10.0.0.1:80", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": " 5.6.7.8 "}, "10.0.0.1:80", "5.6.7.8"},
		{"remote addr", nil, "9.9.9.9:5555", "9.9.9.9"},
		{"ipv6 remote addr", nil, "[::1]:5555", "::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}

func TestBasicAuth(t *testing.T) {
	t.Run("disabled without user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BasicAuth("", "", http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	h := BasicAuth("prom", "s3cret", http.HandlerFunc(okHandler))

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.SetBasicAuth("prom", "nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("valid credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.SetBasicAuth("prom", "s3cret")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMetricsLabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /test/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := Metrics(mux)(mux)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "GET /test/goals/{id}", "418")
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test/goals/abc", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test/goals/def", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRecovery(t *testing.T) {
	h := Recovery(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCompress(t *testing.T) {
	h := Compress(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("fittrack ", 200)))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestRequestLoggingKeepsStatus(t *testing.T) {
	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, skipLogging("/assets/css/output.css"))
	assert.True(t, skipLogging("/metrics"))
	assert.False(t, skipLogging("/app/goals"))
}
