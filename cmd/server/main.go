package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legal_ai_site/config"
	"legal_ai_site/handlers"
	"legal_ai_site/logger"
	"legal_ai_site/middleware"
	"legal_ai_site/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const (
	visitorSweepInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogFile); err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}

	middleware.InitAssetVersions()

	// Optional news cache
	var cache *services.NewsCache
	if cfg.NewsCacheRedisURL != "" {
		c, err := services.NewNewsCacheFromURL(cfg.NewsCacheRedisURL, cfg.NewsCacheTTL)
		if err != nil {
			logger.Fatalf("Invalid NEWS_CACHE_REDIS_URL: %v", err)
		}
		cache = c
		defer cache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cache.Ping(ctx); err != nil {
			logger.WithError(err).Warn("news cache unreachable, falling back to the upstream feed")
		}
		cancel()
	}

	metrics := services.NewMetrics()
	site := handlers.NewSite(cfg, metrics, cache)

	visitors := services.NewVisitorStore(cfg.VisitorTTL, site.NewOrchestrator,
		services.WithMaxSessions(cfg.MaxVisitorTabs))
	visitors.StartCleanup(visitorSweepInterval)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = site.ErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"remote_ip":  v.RemoteIP,
				"visitor":    middleware.GetVisitorID(c),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.IsProduction()))
	e.Use(middleware.CSRFToContext())

	// Static files
	e.Static("/"+middleware.StaticDir, middleware.StaticDir)

	site.Register(e, middleware.Visitor(visitors, cfg.IsProduction()))

	// Start server
	go func() {
		logger.Infof("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	// Closing the tabs first ends their chat sessions, which ends any open
	// event stream; Shutdown would otherwise wait on them until the timeout.
	visitors.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("server shutdown failed")
	}
}
