package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/core/i18n"
	"github.com/emmydush/businessos/core/logger"
	"github.com/emmydush/businessos/middleware"
	"github.com/emmydush/businessos/pkg/clientip"
	"github.com/emmydush/businessos/pkg/ratelimiter"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	_, _ = io.WriteString(w, "ok")
}

func serve(mw middleware.Middleware, h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mw(h).ServeHTTP(rec, r)
	return rec
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates and exposes id", func(t *testing.T) {
		var seen string
		rec := serve(middleware.RequestID(), func(w http.ResponseWriter, r *http.Request) {
			seen, _ = middleware.GetRequestID(r.Context())
		}, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("ignores incoming id by default", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "client-id")
		rec := serve(middleware.RequestID(), ok, r)
		assert.NotEqual(t, "client-id", rec.Header().Get("X-Request-ID"))
	})

	t.Run("uses existing when configured", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Request-ID", "client-id")
		rec := serve(middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true}), ok, r)
		assert.Equal(t, "client-id", rec.Header().Get("X-Request-ID"))
	})

	t.Run("extractor feeds the logger", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextExtractors(middleware.RequestIDExtractor()),
		)

		serve(middleware.RequestID(), func(w http.ResponseWriter, r *http.Request) {
			log.InfoContext(r.Context(), "inside")
		}, httptest.NewRequest(http.MethodGet, "/", nil))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.NotEmpty(t, record["request_id"])
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	mw := func(next http.Handler) http.Handler {
		return middleware.RequestID()(middleware.Logging(log)(next))
	}
	r := httptest.NewRequest(http.MethodPost, "/api/forms/customer/validate", nil)
	r.Header.Set("Authorization", "secret")
	serve(mw, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, "{}")
	}, r)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "HTTP request completed", record["msg"])
	assert.Equal(t, "/api/forms/customer/validate", record["path"])
	assert.EqualValues(t, http.StatusUnprocessableEntity, record["status_code"])
	assert.EqualValues(t, 2, record["bytes_out"])
	assert.NotEmpty(t, record["request_id"])
	assert.NotContains(t, buf.String(), "secret")
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	t.Run("declared length over limit", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 20)))
		rec := serve(middleware.BodyLimit(10), ok, r)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "Request body too large")
	})

	t.Run("reader is capped", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 20)))
		r.ContentLength = -1

		var readErr error
		serve(middleware.BodyLimit(10), func(w http.ResponseWriter, r *http.Request) {
			_, readErr = io.ReadAll(r.Body)
		}, r)

		var maxErr *http.MaxBytesError
		require.ErrorAs(t, readErr, &maxErr)
	})

	t.Run("per content type limit", func(t *testing.T) {
		mw := middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
			MaxSize:          10,
			ContentTypeLimit: map[string]int64{"multipart/form-data": 100},
		})
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 20)))
		r.Header.Set("Content-Type", "multipart/form-data; boundary=x")

		rec := serve(mw, ok, r)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
		Capacity:       2,
		RefillRate:     1,
		RefillInterval: time.Minute,
	})
	require.NoError(t, err)

	mw := middleware.RateLimit(middleware.RateLimitConfig{Limiter: limiter, SetHeaders: true, KeyPrefix: "test:"})
	request := func(ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = ip + ":1234"
		return serve(mw, ok, r)
	}

	rec := request("192.0.2.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, request("192.0.2.1").Code)

	rec = request("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "retry_after")

	assert.Equal(t, http.StatusOK, request("192.0.2.2").Code, "other clients have their own bucket")

	assert.Panics(t, func() { middleware.RateLimit(middleware.RateLimitConfig{}) })
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

func (brokenLimiter) AllowN(context.Context, string, int) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

func TestRateLimitStoreFailure(t *testing.T) {
	t.Parallel()

	rec := serve(middleware.RateLimit(middleware.RateLimitConfig{Limiter: brokenLimiter{}}), ok,
		httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestI18n(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.New(
		i18n.WithLanguages("en", "fr"),
		i18n.WithTranslations("en", "validation", map[string]any{"required": "%{field} is required"}),
		i18n.WithTranslations("fr", "validation", map[string]any{"required": "%{field} est obligatoire"}),
	)
	require.NoError(t, err)

	tests := []struct {
		header string
		query  string
		want   string
		text   string
	}{
		{"fr-FR,fr;q=0.9,en;q=0.8", "", "fr", "Email est obligatoire"},
		{"de-DE", "", "en", "Email is required"},
		{"", "", "en", "Email is required"},
		{"fr", "en", "en", "Email is required"},
	}

	mw := middleware.I18nWithConfig(middleware.I18nConfig{I18n: catalog, Namespace: "validation", QueryParam: "lang"})
	for _, tt := range tests {
		t.Run(tt.header+"?"+tt.query, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?lang=" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				r.Header.Set("Accept-Language", tt.header)
			}

			var text string
			rec := serve(mw, func(w http.ResponseWriter, r *http.Request) {
				tr, ok := middleware.GetTranslator(r.Context())
				require.True(t, ok)
				text = tr.T("required", i18n.M{"field": "Email"})
			}, r)

			assert.Equal(t, tt.want, rec.Header().Get("Content-Language"))
			assert.Equal(t, tt.text, text)
		})
	}

	assert.Panics(t, func() { middleware.I18n(nil, "validation") })
	assert.Panics(t, func() { middleware.I18n(catalog, "") })
}

func TestCORS(t *testing.T) {
	t.Parallel()

	mw := middleware.CORS("https://app.businessos.rw")

	t.Run("preflight allowed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/api/forms/customer/submit", nil)
		r.Header.Set("Origin", "https://app.businessos.rw")
		r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := serve(mw, ok, r)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://app.businessos.rw", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/", nil)
		r.Header.Set("Origin", "https://evil.example")
		r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		assert.Equal(t, http.StatusForbidden, serve(mw, ok, r).Code)
	})

	t.Run("simple request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://app.businessos.rw")
		rec := serve(mw, ok, r)
		assert.Equal(t, "https://app.businessos.rw", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-ID")
	})

	t.Run("subdomain matcher", func(t *testing.T) {
		allow := middleware.AllowOriginSubdomain("businessos.rw")
		_, ok := allow("https://shop.businessos.rw:8443")
		assert.True(t, ok)
		_, ok = allow("https://businessos.rw.evil.example")
		assert.False(t, ok)
	})
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	rec := serve(middleware.SecurityHeaders(false), ok, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))

	rec = serve(middleware.SecurityHeaders(true), ok, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	newRequest := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:4321"
		r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.2")
		return r
	}
	capture := func(mw middleware.Middleware) string {
		var ip string
		serve(mw, func(w http.ResponseWriter, r *http.Request) {
			ip, _ = middleware.GetClientIP(r.Context())
		}, newRequest())
		return ip
	}

	t.Run("headers ignored by default", func(t *testing.T) {
		assert.Equal(t, "10.0.0.1", capture(middleware.ClientIP()))
	})

	t.Run("trusted proxy", func(t *testing.T) {
		res, err := clientip.NewResolver("10.0.0.0/8")
		require.NoError(t, err)
		assert.Equal(t, "198.51.100.4", capture(middleware.ClientIPWithConfig(middleware.ClientIPConfig{Resolver: res})))
	})
}
