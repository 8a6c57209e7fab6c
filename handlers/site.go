package handlers

import (
	"time"

	"legal_ai_site/config"
	"legal_ai_site/middleware"
	"legal_ai_site/services"
	"legal_ai_site/services/chat"
	"legal_ai_site/services/navigation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// maxUploadBody leaves room for the multipart envelope around a 10MB file
const maxUploadBody = "11M"

// Site holds the services behind the HTTP handlers and the route table
// shared by every visitor's orchestrator.
type Site struct {
	cfg            *config.Config
	researcher     chat.Researcher
	researchTarget string
	news           *services.NewsService
	cache          *services.NewsCache
	analyzer       *services.DocumentAnalyzer
	contact        *services.ContactService
	metrics        *services.Metrics
	table          *navigation.Table
}

// NewSite builds the site services from cfg. cache and metrics may be nil.
func NewSite(cfg *config.Config, metrics *services.Metrics, cache *services.NewsCache) *Site {
	research := services.NewResearchClient(cfg.AIBaseURL, cfg.AIRequestTimeout)
	s := &Site{
		cfg:            cfg,
		researcher:     research,
		researchTarget: research.BaseURL(),
		news:           services.NewNewsService(services.NewNewsClient(cfg.NewsBaseURL, cfg.AIRequestTimeout), cache, metrics),
		cache:          cache,
		analyzer:       services.NewDocumentAnalyzer(cfg.AnalysisDelay, metrics),
		contact:        services.NewContactService(cfg, metrics),
		metrics:        metrics,
	}
	s.table = navigation.NewTable(s.routes()...)
	return s
}

// Table returns the route table
func (s *Site) Table() *navigation.Table {
	return s.table
}

// NewOrchestrator creates the navigation state for one visitor
func (s *Site) NewOrchestrator() *navigation.Orchestrator {
	return navigation.New(s.table,
		navigation.TimedTransition{
			ExitDuration:  s.cfg.PageExitDuration,
			EnterDuration: s.cfg.PageEnterDuration,
		},
		navigation.WithObserver(s.observeNavigation),
	)
}

// observeNavigation labels by route pattern so arbitrary paths cannot grow
// the metric's label set
func (s *Site) observeNavigation(path string, err error) {
	label := "unmatched"
	if m, ok := s.table.Resolve(path); ok {
		label = m.Route.Pattern
	}
	s.metrics.ObserveNavigation(label, err)
}

// Register mounts all routes on e. pageMiddleware wraps the visitor facing
// routes only; infrastructure endpoints skip it.
func (s *Site) Register(e *echo.Echo, pageMiddleware ...echo.MiddlewareFunc) {
	e.GET("/sitemap.xml", s.Sitemap)
	e.GET("/robots.txt", s.Robots)
	e.GET("/healthz", s.Healthz)
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	g := e.Group("", pageMiddleware...)
	for _, r := range s.table.Routes() {
		g.GET(r.Pattern, s.Page)
	}

	askai := g.Group("/askai")
	{
		askai.POST("", s.AskSubmit, middleware.ChatRateLimiter.Middleware())
		askai.POST("/draft", s.AskDraft)
		askai.GET("/messages", s.AskMessages)
		askai.GET("/events", s.AskEvents)
	}

	g.POST("/legaldocs/analyze", s.AnalyzeDocument,
		echomiddleware.BodyLimit(maxUploadBody),
		middleware.AnalysisRateLimiter.Middleware(),
	)
	g.POST("/contact", s.SubmitContact, middleware.ContactRateLimiter.Middleware())
	g.GET("/news/articles/:index", s.NewsArticle)
}

func (s *Site) observeChat(outcome chat.Outcome, elapsed time.Duration) {
	s.metrics.ObserveChat(string(outcome), elapsed)
}
