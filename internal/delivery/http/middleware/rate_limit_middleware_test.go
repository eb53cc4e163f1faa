package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mdent-api/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Within limit", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{
			Requests:  3,
			Per:       time.Minute,
			BlockTime: time.Minute,
		}, testLogger())

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/patients", nil)
			req.RemoteAddr = "10.0.0.1:51000"

			rr := httptest.NewRecorder()
			rl.Limit(okHandler).ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code, "request %d", i)
		}
	})

	t.Run("Burst exhausted then blocked", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{
			Requests:  2,
			Per:       time.Hour,
			BlockTime: time.Hour,
		}, testLogger())

		send := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/patients", nil)
			req.RemoteAddr = "10.0.0.2:51000"
			rr := httptest.NewRecorder()
			rl.Limit(okHandler).ServeHTTP(rr, req)
			return rr
		}

		assert.Equal(t, http.StatusOK, send().Code)
		assert.Equal(t, http.StatusOK, send().Code)

		over := send()
		assert.Equal(t, http.StatusTooManyRequests, over.Code)
		assert.Equal(t, "rate_limited", errorCode(t, over))

		// Still blocked on the next attempt.
		assert.Equal(t, http.StatusTooManyRequests, send().Code)
	})

	t.Run("Addresses are tracked independently", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{
			Requests:  1,
			Per:       time.Hour,
			BlockTime: time.Hour,
		}, testLogger())

		sendFrom := func(addr string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/patients", nil)
			req.RemoteAddr = addr
			rr := httptest.NewRecorder()
			rl.Limit(okHandler).ServeHTTP(rr, req)
			return rr
		}

		assert.Equal(t, http.StatusOK, sendFrom("10.0.0.3:51000").Code)
		assert.Equal(t, http.StatusTooManyRequests, sendFrom("10.0.0.3:51001").Code)
		assert.Equal(t, http.StatusOK, sendFrom("10.0.0.4:51000").Code)
	})
}
