package httpx_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "remote addr", want: "10.0.0.7"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": " 198.51.100.4 , 10.0.0.7"}, want: "198.51.100.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.9"}, want: "198.51.100.9"},
		{
			name:    "forwarded wins over real ip",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.4", "X-Real-IP": "198.51.100.9"},
			want:    "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.7:40000"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestJSONFieldKeyExtractor(t *testing.T) {
	t.Run("extracts and normalizes field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":" Alice@Example.COM "}`))

		key := httpx.JSONFieldKeyExtractor("email")(req)
		require.Equal(t, "alice@example.com", key)
	})

	t.Run("restores body for the next handler", func(t *testing.T) {
		body := `{"email":"bob@example.com","password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

		_ = httpx.JSONFieldKeyExtractor("email")(req)

		rest, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.Equal(t, body, string(rest))
	})

	t.Run("returns empty for missing field or bad JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"other":1}`))
		require.Equal(t, "", httpx.JSONFieldKeyExtractor("email")(req))

		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
		require.Equal(t, "", httpx.JSONFieldKeyExtractor("email")(req))

		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":42}`))
		require.Equal(t, "", httpx.JSONFieldKeyExtractor("email")(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	extractor := httpx.CompositeKeyExtractor(":",
		httpx.IPKeyExtractor,
		httpx.JSONFieldKeyExtractor("email"),
	)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"alice@x.io"}`))
	req.RemoteAddr = "10.0.0.7:40000"
	require.Equal(t, "10.0.0.7:alice@x.io", extractor(req))

	// Empty parts are dropped rather than leaving a trailing separator.
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.RemoteAddr = "10.0.0.7:40000"
	require.Equal(t, "10.0.0.7", extractor(req))
}

func TestRateLimitProfiles(t *testing.T) {
	require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}, httpx.StrictLimit)
	require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 60}, httpx.ModerateLimit)
	require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 200, Window: time.Minute, Burst: 200}, httpx.GlobalLimit)
}

// resetRequest builds a password reset style request from ip for email.
func resetRequest(ip, email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/reset_password",
		strings.NewReader(`{"email":"`+email+`","token":"t","password":"secret-secret"}`))
	req.RemoteAddr = ip + ":40000"
	return req
}

func TestStrictLimitPerIPAndEmail(t *testing.T) {
	h := httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")(okHandler)

	for i := range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, resetRequest("203.0.113.5", "alice@example.com"))
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)
	}

	// Case and whitespace do not open a new bucket.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, resetRequest("203.0.113.5", " ALICE@example.com"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.JSONEq(t, `{"error":"Too many requests"}`, rec.Body.String())

	t.Run("other email from the same ip", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, resetRequest("203.0.113.5", "bob@example.com"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("same email from another ip", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, resetRequest("203.0.113.6", "alice@example.com"))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLimitedHandlerStillReadsBody(t *testing.T) {
	var got string
	h := httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
	}))

	h.ServeHTTP(httptest.NewRecorder(), resetRequest("203.0.113.5", "alice@example.com"))
	require.JSONEq(t, `{"email":"alice@example.com","token":"t","password":"secret-secret"}`, got)
}

func TestForgotPasswordWithoutEmailFallsBackToIP(t *testing.T) {
	h := httpx.RateLimitByIPAndJSONField(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, "email")(okHandler)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/auth/forgot_password", strings.NewReader(`{}`))
		req.RemoteAddr = "203.0.113.5:40000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send())
	require.Equal(t, http.StatusTooManyRequests, send())
}

func TestModerateLimitPerUser(t *testing.T) {
	limit := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := httpx.RateLimitByUser(limit)(okHandler)

	send := func(userID string) int {
		req := httptest.NewRequest(http.MethodPost, "/findings", nil)
		req.RemoteAddr = "203.0.113.5:40000"
		req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, userID))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("analyst-1"))
	require.Equal(t, http.StatusOK, send("analyst-1"))
	require.Equal(t, http.StatusTooManyRequests, send("analyst-1"))

	// A colleague behind the same NAT has their own bucket.
	require.Equal(t, http.StatusOK, send("analyst-2"))
}

func TestRateLimitWithoutKeyAllowsRequest(t *testing.T) {
	limit := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitMiddleware(limit, httpx.JSONFieldKeyExtractor("email"))(okHandler)

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want httpx.RateLimitConfig
	}{
		{
			name: "unset keeps profile",
			want: httpx.StrictLimit,
		},
		{
			name: "all overridden",
			env: map[string]string{
				"RATELIMIT_STRICT_REQUESTS":   "10",
				"RATELIMIT_STRICT_WINDOW_SEC": "30",
				"RATELIMIT_STRICT_BURST":      "2",
			},
			want: httpx.RateLimitConfig{RequestsPerWindow: 10, Window: 30 * time.Second, Burst: 2},
		},
		{
			name: "partial override",
			env:  map[string]string{"RATELIMIT_STRICT_REQUESTS": "1000"},
			want: httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 5},
		},
		{
			name: "malformed and non-positive values ignored",
			env: map[string]string{
				"RATELIMIT_STRICT_REQUESTS":   "lots",
				"RATELIMIT_STRICT_WINDOW_SEC": "-10",
				"RATELIMIT_STRICT_BURST":      "0",
			},
			want: httpx.StrictLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.Equal(t, tt.want, httpx.ParseRateLimitFromEnv("STRICT", httpx.StrictLimit))
		})
	}
}
