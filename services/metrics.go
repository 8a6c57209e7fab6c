package services

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	navigations *prometheus.CounterVec
	chats       *prometheus.CounterVec
	chatLatency prometheus.Histogram
	newsFetches *prometheus.CounterVec
	contacts    *prometheus.CounterVec
	analyses    prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalai_navigations_total",
				Help: "Page transitions by path and result",
			},
			[]string{"path", "result"},
		),
		chats: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalai_chat_requests_total",
				Help: "Research requests by outcome",
			},
			[]string{"outcome"},
		),
		chatLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "legalai_chat_request_duration_seconds",
				Help:    "Time spent waiting on the research service",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
			},
		),
		newsFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalai_news_fetches_total",
				Help: "News lookups by source (cache, upstream, error)",
			},
			[]string{"source"},
		),
		contacts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "legalai_contact_submissions_total",
				Help: "Contact form submissions by result",
			},
			[]string{"result"},
		),
		analyses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "legalai_document_analyses_total",
				Help: "Completed document analyses",
			},
		),
	}
	m.registry.MustRegister(m.navigations, m.chats, m.chatLatency, m.newsFetches, m.contacts, m.analyses)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveNavigation(path string, err error) {
	if m == nil {
		return
	}
	result := "mounted"
	if err != nil {
		result = "failed"
	}
	m.navigations.WithLabelValues(path, result).Inc()
}

func (m *Metrics) ObserveChat(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.chats.WithLabelValues(outcome).Inc()
	m.chatLatency.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveNews(source string) {
	if m == nil {
		return
	}
	m.newsFetches.WithLabelValues(source).Inc()
}

func (m *Metrics) ObserveContact(result string) {
	if m == nil {
		return
	}
	m.contacts.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveAnalysis() {
	if m == nil {
		return
	}
	m.analyses.Inc()
}
