package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directives splits a CSP header into its directives, keyed by name
func directives(csp string) map[string][]string {
	out := make(map[string][]string)
	for _, part := range strings.Split(csp, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		out[fields[0]] = fields[1:]
	}
	return out
}

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()
	handler := CSPNonce()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))

	nonce, ok := c.Get(string(NonceKey)).(string)
	require.True(t, ok)
	assert.NotEmpty(t, nonce)
	assert.Equal(t, nonce, GetNonce(c.Request().Context()))

	policy := directives(rec.Header().Get("Content-Security-Policy"))

	t.Run("Scripts", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			"'self'",
			"'nonce-" + nonce + "'",
			"https://unpkg.com",
			"https://challenges.cloudflare.com",
		}, policy["script-src"])
		assert.NotContains(t, policy["script-src"], "'unsafe-inline'")
		assert.NotContains(t, policy["script-src"], "'unsafe-eval'")
	})

	t.Run("Event stream and fragments stay same origin", func(t *testing.T) {
		assert.Equal(t, []string{"'self'"}, policy["connect-src"])
	})

	t.Run("Forms post to the site only", func(t *testing.T) {
		assert.Equal(t, []string{"'self'"}, policy["form-action"])
		assert.Equal(t, []string{"'self'"}, policy["base-uri"])
	})

	t.Run("Turnstile frame", func(t *testing.T) {
		assert.Equal(t, []string{"https://challenges.cloudflare.com"}, policy["frame-src"])
	})

	t.Run("Fresh nonce per request", func(t *testing.T) {
		rec2 := httptest.NewRecorder()
		c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec2)
		require.NoError(t, handler(c2))
		assert.NotEqual(t, nonce, GetNonce(c2.Request().Context()))
		assert.NotContains(t, rec2.Header().Get("Content-Security-Policy"), nonce)
	})
}

func TestGetNonce(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), NonceKey, "test-nonce")
		assert.Equal(t, "test-nonce", GetNonce(ctx))
	})

	t.Run("NotExists", func(t *testing.T) {
		assert.Equal(t, "", GetNonce(context.Background()))
	})
}
