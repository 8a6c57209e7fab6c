package services

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"legal_ai_site/config"
	"legal_ai_site/logger"
	"legal_ai_site/models"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	logger.WithFields(logrus.Fields{"id": sent.Id, "to": email.To}).Info("email sent via Resend")
	return nil
}

// logEmailToConsole logs email details in test mode
func logEmailToConsole(email *Email) {
	logger.WithFields(logrus.Fields{
		"to":       email.To,
		"reply_to": email.ReplyTo,
		"subject":  email.Subject,
		"text":     email.TextBody,
		"html":     truncate(email.HTMLBody, 500),
	}).Info("email logged (test mode, not sent)")
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

var contactHTML = htmltemplate.Must(htmltemplate.New("contact_html").Parse(`<h2>New contact request</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
{{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
<p><strong>Subject:</strong> {{.SubjectLabel}}</p>
<p style="white-space: pre-wrap">{{.Message}}</p>
`))

var contactText = texttemplate.Must(texttemplate.New("contact_text").Parse(`New contact request

From: {{.Name}} <{{.Email}}>
{{if .Company}}Company: {{.Company}}
{{end}}Subject: {{.SubjectLabel}}

{{.Message}}
`))

// ContactEmailData is the template data for contact notifications
type ContactEmailData struct {
	models.ContactRequest
	SubjectLabel string
}

// BuildContactNotificationEmail creates the inbox notification for a contact
// form submission. Replies go to the sender.
func BuildContactNotificationEmail(inbox string, req models.ContactRequest) (*Email, error) {
	data := ContactEmailData{ContactRequest: req, SubjectLabel: models.SubjectLabel(req.Subject)}

	var htmlBody, textBody bytes.Buffer
	if err := contactHTML.Execute(&htmlBody, data); err != nil {
		return nil, fmt.Errorf("failed to render contact email: %w", err)
	}
	if err := contactText.Execute(&textBody, data); err != nil {
		return nil, fmt.Errorf("failed to render contact email: %w", err)
	}

	subject := fmt.Sprintf("[LegalAI] %s from %s", data.SubjectLabel, req.Name)
	return &Email{
		To:       []string{inbox},
		ReplyTo:  req.Email,
		Subject:  strings.ReplaceAll(subject, "\n", " "),
		HTMLBody: htmlBody.String(),
		TextBody: textBody.String(),
	}, nil
}
