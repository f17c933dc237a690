package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"retail-ops-core/internal/handler/httperr"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limited")

// ClientRateLimiter keeps one token bucket per client IP. Buckets idle longer than
// idleTimeout are dropped, at most once per idleTimeout, on the request path.
type ClientRateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientLimiter
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration
	lastSweep   time.Time
	now         func() time.Time
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewClientRateLimiter(cfg config.RateLimitConfig) *ClientRateLimiter {
	burst := cfg.CustomerFormBurst
	if burst <= 0 {
		burst = 1
	}
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = time.Hour
	}
	return &ClientRateLimiter{
		clients:     make(map[string]*clientLimiter),
		limit:       rate.Limit(cfg.CustomerFormRPS),
		burst:       burst,
		idleTimeout: idle,
		now:         time.Now,
	}
}

func (rl *ClientRateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTimeout {
		rl.sweepLocked(now)
	}
	cl, ok := rl.clients[clientIP]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = cl
	}
	cl.lastAccess = now
	return cl.limiter.AllowN(now, 1)
}

// Sweep removes idle buckets and reports how many were dropped.
func (rl *ClientRateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.sweepLocked(rl.now())
}

func (rl *ClientRateLimiter) sweepLocked(now time.Time) int {
	rl.lastSweep = now
	cutoff := now.Add(-rl.idleTimeout)
	removed := 0
	for ip, cl := range rl.clients {
		if cl.lastAccess.Before(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

func (rl *ClientRateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 60
	}
	secs := int(1 / float64(rl.limit))
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (rl *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.Header("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
