package services

import (
	"context"
	"time"

	"legal_ai_site/models"
)

// DocumentAnalyzer produces a review of an uploaded document. The current
// implementation returns a fixed service-agreement review after a delay.
type DocumentAnalyzer struct {
	delay   time.Duration
	metrics *Metrics
}

func NewDocumentAnalyzer(delay time.Duration, metrics *Metrics) *DocumentAnalyzer {
	return &DocumentAnalyzer{delay: delay, metrics: metrics}
}

// Analyze waits for the configured delay and returns the review. It stops
// early with ctx.Err() when the request goes away.
func (a *DocumentAnalyzer) Analyze(ctx context.Context, fileName string) (*models.AnalysisResult, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	a.metrics.ObserveAnalysis()
	return &models.AnalysisResult{
		FileName: fileName,
		Summary:  "This contract appears to be a standard service agreement with favorable terms for the service provider.",
		KeyPoints: []string{
			"Contract duration: 12 months with auto-renewal clause",
			"Payment terms: Net 30 days",
			"Termination clause allows 30-day notice",
			"Liability is limited to contract value",
			"No non-compete restrictions found",
		},
		RiskLevel: models.RiskLow,
		Recommendations: []string{
			"Consider adding a force majeure clause",
			"Review the indemnification terms",
			"Clarify intellectual property ownership",
		},
	}, nil
}
