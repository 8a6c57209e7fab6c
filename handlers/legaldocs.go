package handlers

import (
	"context"
	"errors"
	"net/http"

	"legal_ai_site/logger"
	"legal_ai_site/services"
	"legal_ai_site/templates/components"
	"legal_ai_site/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AnalyzeDocument validates the upload and runs the document analysis.
// The file content is only sniffed, never stored.
func (s *Site) AnalyzeDocument(c echo.Context) error {
	fh, err := c.FormFile("document")
	if err != nil {
		return s.analysisResponse(c, http.StatusUnprocessableEntity,
			components.Alert("error", "Please select a file to analyze."))
	}
	if err := services.ValidateDocumentUpload(fh); err != nil {
		return s.analysisResponse(c, http.StatusUnprocessableEntity, components.Alert("error", err.Error()))
	}

	result, err := s.analyzer.Analyze(c.Request().Context(), fh.Filename)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		logger.WithFields(logrus.Fields{"file": fh.Filename}).WithError(err).Error("document analysis failed")
		return s.analysisResponse(c, http.StatusInternalServerError,
			components.Alert("error", "Analysis failed. Please try again."))
	}

	return s.analysisResponse(c, http.StatusOK, components.AnalysisReport(result))
}

// analysisResponse fills the result slot, or renders the whole page for
// plain form posts
func (s *Site) analysisResponse(c echo.Context, status int, slot templ.Component) error {
	if isHTMX(c) {
		return render(c, status, slot)
	}
	const key = "/legaldocs"
	return s.renderPage(c, status, key, s.canonical(GetSEO("legaldocs"), key), pages.LegalDocs(slot))
}
