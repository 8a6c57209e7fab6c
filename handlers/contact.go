package handlers

import (
	"errors"
	"net/http"

	"legal_ai_site/logger"
	"legal_ai_site/models"
	"legal_ai_site/services"
	"legal_ai_site/templates/pages"

	"github.com/labstack/echo/v4"
)

const turnstileResponseField = "cf-turnstile-response"

// SubmitContact validates the form and notifies the contact inbox
func (s *Site) SubmitContact(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}

	form := pages.ContactForm{Values: req, SiteKey: s.cfg.TurnstileSiteKey}
	status := http.StatusOK

	errs, err := s.contact.Submit(c.Request().Context(), req, c.FormValue(turnstileResponseField), c.RealIP())
	switch {
	case errors.Is(err, models.ErrInvalidContact):
		form.Errors = errs
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrVerificationFailed):
		form.Error = "We couldn't verify your submission. Please complete the challenge and try again."
		status = http.StatusForbidden
	case err != nil:
		logger.WithError(err).Error("contact submission failed")
		form.Error = "We couldn't send your message right now. Please try again later."
		status = http.StatusBadGateway
	default:
		form = pages.ContactForm{Success: true, SiteKey: s.cfg.TurnstileSiteKey}
	}

	if isHTMX(c) {
		return render(c, status, pages.ContactFormPanel(form))
	}
	const key = "/contact"
	return s.renderPage(c, status, key, s.canonical(GetSEO("contact"), key), pages.Contact(form))
}
