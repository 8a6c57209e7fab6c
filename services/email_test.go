package services

import (
	"testing"

	"legal_ai_site/config"
	"legal_ai_site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContactNotificationEmail(t *testing.T) {
	req := models.ContactRequest{
		Name:    "Ada <script>",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
		Subject: "demo",
		Message: "Line one\nLine two",
	}

	email, err := BuildContactNotificationEmail("inbox@legalai.test", req)
	require.NoError(t, err)

	assert.Equal(t, []string{"inbox@legalai.test"}, email.To)
	assert.Equal(t, "ada@example.com", email.ReplyTo)
	assert.Equal(t, "[LegalAI] Request Demo from Ada <script>", email.Subject)
	assert.Contains(t, email.HTMLBody, "Ada &lt;script&gt;")
	assert.NotContains(t, email.HTMLBody, "<script>")
	assert.Contains(t, email.HTMLBody, "Analytical Engines")
	assert.Contains(t, email.TextBody, "Subject: Request Demo")
	assert.Contains(t, email.TextBody, "Line one\nLine two")
}

func TestBuildContactNotificationEmail_NoCompany(t *testing.T) {
	email, err := BuildContactNotificationEmail("inbox@legalai.test", models.ContactRequest{
		Name: "Ada", Email: "ada@example.com", Subject: "other", Message: "Hi",
	})
	require.NoError(t, err)
	assert.NotContains(t, email.TextBody, "Company:")
	assert.NotContains(t, email.HTMLBody, "Company:")
}

func TestSendEmail_TestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test Subject",
		HTMLBody: "<p>Test</p>",
		TextBody: "Test",
	}

	assert.NoError(t, SendEmail(cfg, email))
}

func TestSendEmail_NoApiKey(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false, ResendAPIKey: ""}
	err := SendEmail(cfg, &Email{To: []string{"test@example.com"}, TextBody: "Test"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY not configured")
}

func TestSendEmail_NoRecipients(t *testing.T) {
	cfg := &config.Config{ResendAPIKey: "re_test"}
	err := SendEmail(cfg, &Email{TextBody: "Test"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}

func TestSendEmail_NoBody(t *testing.T) {
	cfg := &config.Config{ResendAPIKey: "re_test"}
	err := SendEmail(cfg, &Email{To: []string{"test@example.com"}, Subject: "Empty"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "either HTMLBody or TextBody")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel", truncate("hello", 3))
	assert.Equal(t, "", truncate("", 5))
}
