package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("a")
	assert.True(t, ok)
	ok, _ = rl.Allow("a")
	assert.True(t, ok)

	now = now.Add(20 * time.Second)
	ok, retry := rl.Allow("a")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retry)

	ok, _ = rl.Allow("b")
	assert.True(t, ok, "keys are limited independently")

	now = now.Add(41 * time.Second)
	ok, _ = rl.Allow("a")
	assert.True(t, ok, "window resets")
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()

	newHandler := func(rl *RateLimiter) echo.HandlerFunc {
		return rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})
	}

	t.Run("WithinLimit", func(t *testing.T) {
		handler := newHandler(NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Second}))

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/askai", nil), rec)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		handler := newHandler(NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute}))

		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)))

		rec = httptest.NewRecorder()
		err := handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec))

		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("HXRequestExceeded", func(t *testing.T) {
		handler := newHandler(NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Second}))

		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec = httptest.NewRecorder()

		assert.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")
		assert.Contains(t, rec.Body.String(), `role="alert"`)
	})

	t.Run("KeyedByVisitor", func(t *testing.T) {
		handler := newHandler(NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute}))

		for _, id := range []string{"visitor-a", "visitor-b"} {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			c.Set(visitorIDKey, id)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
