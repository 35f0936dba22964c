// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

type RateLimiter struct {
	ips            map[string]map[string]*rate.Limiter // ip → endpoint → limiter
	mu             *sync.RWMutex
	defaultLimit   rate.Limit
	defaultBurst   int
	endpointLimits map[string]endpointLimit
}

func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:            make(map[string]map[string]*rate.Limiter),
		mu:             &sync.RWMutex{},
		defaultLimit:   rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst:   20,                                 // Allow bursts of 20 requests
		endpointLimits: make(map[string]endpointLimit),
	}

	// Uploads move megabytes per call, keep them well below the default
	limiter.endpointLimits["/api/upload"] = endpointLimit{
		limit: rate.Every(2 * time.Second),
		burst: 3,
	}

	return limiter
}

func (rl *RateLimiter) getLimiter(ip, path string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	endpoints, ok := rl.ips[ip]
	if !ok {
		endpoints = make(map[string]*rate.Limiter)
		rl.ips[ip] = endpoints
	}

	key := ""
	limit, burst := rl.defaultLimit, rl.defaultBurst
	if el, ok := rl.endpointLimits[path]; ok {
		key = path
		limit, burst = el.limit, el.burst
	}

	limiter, ok := endpoints[key]
	if !ok {
		limiter = rate.NewLimiter(limit, burst)
		endpoints[key] = limiter
	}
	return limiter
}

// RateLimit returns an echo middleware enforcing per-IP request limits,
// with stricter per-endpoint overrides where configured.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.getLimiter(c.RealIP(), c.Path())
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "Too many requests. Please try again later.",
				})
			}
			return next(c)
		}
	}
}
