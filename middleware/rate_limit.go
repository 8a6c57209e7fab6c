package middleware

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc returns the bucket key (defaults to visitor id, then IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window, per-key limiter for one group of endpoints
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			if id := GetVisitorID(c); id != "" {
				return id
			}
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		now:    time.Now,
	}

	go rl.cleanup()

	return rl
}

// Allow records a request for key and reports whether it is within the limit.
// When it is not, it also returns how long until the window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{
			count:     1,
			expiresAt: now.Add(rl.config.Window),
		}
		return true, 0
	}

	if entry.count >= rl.config.Requests {
		return false, entry.expiresAt.Sub(now)
	}
	entry.count++
	return true, 0
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := rl.Allow(rl.config.KeyFunc(c))
			if ok {
				return next(c)
			}

			seconds := int(retryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))

			// HTMX swaps the response into the page, so send a fragment
			if c.Request().Header.Get("HX-Request") == "true" {
				return c.HTML(http.StatusTooManyRequests, fmt.Sprintf(`<div class="alert alert-error" role="alert">%s</div>`, html.EscapeString(rl.config.Message)))
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
		}
	}
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := rl.now()
		for key, entry := range rl.store {
			if now.After(entry.expiresAt) {
				delete(rl.store, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Pre-configured rate limiters

// ChatRateLimiter limits research questions to 10 per minute per visitor
var ChatRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 10,
	Window:   1 * time.Minute,
	Message:  "You're asking questions too quickly. Please wait a moment before trying again.",
})

// AnalysisRateLimiter limits document analyses to 5 per minute per visitor
var AnalysisRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 5,
	Window:   1 * time.Minute,
	Message:  "Too many documents submitted. Please wait before analyzing another one.",
})

// ContactRateLimiter limits contact form submissions to 3 per hour per IP
var ContactRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 3,
	Window:   1 * time.Hour,
	KeyFunc:  func(c echo.Context) string { return c.RealIP() },
	Message:  "Too many form submissions. Please wait before trying again.",
})
