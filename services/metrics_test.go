package services

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.ObserveNavigation("/about", nil)
	m.ObserveNavigation("/about", errors.New("boom"))
	m.ObserveChat("succeeded", 1500*time.Millisecond)
	m.ObserveContact("sent")
	m.ObserveAnalysis()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.navigations.WithLabelValues("/about", "mounted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.navigations.WithLabelValues("/about", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.chats.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "legalai_chat_request_duration_seconds_count 1")
	assert.Contains(t, string(body), `legalai_contact_submissions_total{result="sent"} 1`)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveNavigation("/", nil)
		m.ObserveChat("failed", time.Second)
		m.ObserveNews("cache")
		m.ObserveContact("sent")
		m.ObserveAnalysis()
	})
}
