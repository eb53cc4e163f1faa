package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"mdent-api/config"
	"mdent-api/pkg/apperrors"
	"mdent-api/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token-bucket limiter per client address. Addresses
// that exhaust their bucket are blocked for a fixed window.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *logrus.Logger
}

func NewRateLimiter(cfg config.RateLimitConfig, log *logrus.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  cfg.Requests,
		per:       cfg.Per,
		blockTime: cfg.BlockTime,
		log:       log,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		rl.mu.Lock()

		if blockedUntil, found := rl.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				rl.mu.Unlock()
				response.FromError(rl.log, w, apperrors.RateLimited())
				return
			}
			delete(rl.blocked, ip)
		}

		limiter, exists := rl.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)
			rl.limiters[ip] = limiter
		}

		rl.mu.Unlock()

		if !limiter.Allow() {
			rl.mu.Lock()
			rl.blocked[ip] = time.Now().Add(rl.blockTime)
			rl.mu.Unlock()

			response.FromError(rl.log, w, apperrors.RateLimited())
			return
		}

		next.ServeHTTP(w, req)
	})
}
