package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"legal_ai_site/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if name != "" {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestAnalyzeDocument(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	t.Run("Valid text file", func(t *testing.T) {
		body, contentType := uploadBody(t, "document", "lease.txt", []byte("This lease is made between the parties."))
		rec := env.do(http.MethodPost, "/legaldocs/analyze", body, map[string]string{
			"HX-Request":           "true",
			echo.HeaderContentType: contentType,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Analysis Results")
		assert.Contains(t, rec.Body.String(), "lease.txt")
		assert.NotContains(t, rec.Body.String(), "<!doctype html>")
	})

	t.Run("Rejected extension", func(t *testing.T) {
		body, contentType := uploadBody(t, "document", "tool.exe", []byte("MZ"))
		rec := env.do(http.MethodPost, "/legaldocs/analyze", body, map[string]string{
			"HX-Request":           "true",
			echo.HeaderContentType: contentType,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "file type not allowed")
	})

	t.Run("Content does not match extension", func(t *testing.T) {
		body, contentType := uploadBody(t, "document", "contract.pdf", []byte("not a pdf"))
		rec := env.do(http.MethodPost, "/legaldocs/analyze", body, map[string]string{
			"HX-Request":           "true",
			echo.HeaderContentType: contentType,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid")
	})

	t.Run("Missing file", func(t *testing.T) {
		body, contentType := uploadBody(t, "document", "", nil)
		rec := env.do(http.MethodPost, "/legaldocs/analyze", body, map[string]string{
			"HX-Request":           "true",
			echo.HeaderContentType: contentType,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please select a file")
	})

	t.Run("Plain form post renders the page", func(t *testing.T) {
		body, contentType := uploadBody(t, "document", "notes.txt", []byte("plain text"))
		rec := env.do(http.MethodPost, "/legaldocs/analyze", body, map[string]string{
			echo.HeaderContentType: contentType,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		out := rec.Body.String()
		assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		assert.Contains(t, out, `<div id="analysis-slot" aria-live="polite"><section id="analysis-result"`)
	})
}

func validContact() url.Values {
	return url.Values{
		"name":    {"Asha Rao"},
		"email":   {"asha@example.com"},
		"company": {"Rao & Co"},
		"subject": {"demo"},
		"message": {"We would like a demo for our team."},
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t, nil, nil)
		rec := env.hxPostForm("/contact", validContact(), "X-Real-IP", "198.51.100.1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Thank you for your message")
		assert.NotContains(t, rec.Body.String(), "<form")
	})

	t.Run("Validation errors keep input", func(t *testing.T) {
		env := newTestEnv(t, nil, nil)
		form := validContact()
		form.Set("email", "not-an-email")
		form.Set("message", "")

		rec := env.hxPostForm("/contact", form, "X-Real-IP", "198.51.100.2")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		out := rec.Body.String()
		assert.Contains(t, out, "Please enter a valid email address")
		assert.Contains(t, out, "Please enter a message")
		assert.Contains(t, out, `value="Asha Rao"`)
		assert.Contains(t, out, `<option value="demo" selected>`)
	})

	t.Run("Turnstile rejection", func(t *testing.T) {
		env := newTestEnv(t, nil, nil, func(cfg *config.Config) {
			cfg.TurnstileSiteKey = "site"
			cfg.TurnstileSecretKey = "secret"
		})
		rec := env.hxPostForm("/contact", validContact(), "X-Real-IP", "198.51.100.3")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "verify your submission")
		assert.Contains(t, rec.Body.String(), `data-sitekey="site"`)
	})

	t.Run("Rate limited", func(t *testing.T) {
		env := newTestEnv(t, nil, nil)
		form := validContact()
		form.Set("name", "")
		var rec = env.hxPostForm("/contact", form, "X-Real-IP", "198.51.100.4")
		for i := 0; i < 3; i++ {
			rec = env.hxPostForm("/contact", form, "X-Real-IP", "198.51.100.4")
		}
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})
}
