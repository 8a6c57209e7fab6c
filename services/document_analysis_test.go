package services

import (
	"context"
	"testing"
	"time"

	"legal_ai_site/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentAnalyzer(t *testing.T) {
	t.Run("Returns review after delay", func(t *testing.T) {
		metrics := NewMetrics()
		analyzer := NewDocumentAnalyzer(20*time.Millisecond, metrics)

		start := time.Now()
		result, err := analyzer.Analyze(context.Background(), "lease.pdf")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
		assert.Equal(t, "lease.pdf", result.FileName)
		assert.Equal(t, models.RiskLow, result.RiskLevel)
		assert.Len(t, result.KeyPoints, 5)
		assert.Len(t, result.Recommendations, 3)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.analyses))
	})

	t.Run("Cancelled request", func(t *testing.T) {
		analyzer := NewDocumentAnalyzer(time.Hour, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := analyzer.Analyze(ctx, "lease.pdf")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
	})
}
