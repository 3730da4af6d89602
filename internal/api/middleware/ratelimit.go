package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// IPRateLimiter manages rate limiters per IP address
type IPRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    b,
	}
}

// GetLimiter returns the rate limiter for the given IP
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(i.rate, i.burst)
		i.limiters[ip] = limiter
	}

	return limiter
}

// CleanupOldEntries drops all tracked limiters. Called periodically to
// bound memory; idle clients simply start a fresh bucket.
func (i *IPRateLimiter) CleanupOldEntries() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.limiters = make(map[string]*rate.Limiter)
}

// RateLimiter returns rate limiting middleware
func RateLimiter(requestsPerSecond float64, burst int, logger *slog.Logger) echo.MiddlewareFunc {
	limiter := NewIPRateLimiter(rate.Limit(requestsPerSecond), burst)

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			limiter.CleanupOldEntries()
		}
	}()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			l := limiter.GetLimiter(ip)

			if !l.Allow() {
				if logger != nil {
					logger.Warn("rate limit exceeded",
						slog.String("ip", ip),
						slog.String("path", c.Path()))
				}

				c.Response().Header().Set("Retry-After", "60")
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"msg": "Too many requests",
				})
			}

			return next(c)
		}
	}
}
