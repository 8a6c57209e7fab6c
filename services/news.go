package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"legal_ai_site/logger"
	"legal_ai_site/models"
)

const (
	newsPath = "/api/get-news"
	// NewsErrorMessage is shown in place of the feed when it cannot be loaded
	NewsErrorMessage = "Failed to fetch news. Please make sure the backend server is running."
)

var (
	ErrNewsUnavailable = errors.New("news feed unavailable")
	ErrArticleNotFound = errors.New("article not found")
)

// NewsFetcher loads the recent laws and rules feed
type NewsFetcher interface {
	FetchNews(ctx context.Context) ([]models.Article, error)
}

// NewsClient reads the feed from the backend API
type NewsClient struct {
	baseURL string
	client  *http.Client
}

func NewNewsClient(baseURL string, timeout time.Duration) *NewsClient {
	return &NewsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchNews returns the articles in recent_laws_and_rules_india. A missing
// array is an empty feed, not an error.
func (c *NewsClient) FetchNews(ctx context.Context) ([]models.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+newsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("news API returned status %d", resp.StatusCode)
	}

	var feed models.NewsFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}
	if feed.Articles == nil {
		feed.Articles = []models.Article{}
	}
	return feed.Articles, nil
}

// NewsService serves the feed through an optional Redis cache
type NewsService struct {
	fetcher NewsFetcher
	cache   *NewsCache
	metrics *Metrics
}

// NewNewsService creates the service. cache and metrics may be nil.
func NewNewsService(fetcher NewsFetcher, cache *NewsCache, metrics *Metrics) *NewsService {
	return &NewsService{
		fetcher: fetcher,
		cache:   cache,
		metrics: metrics,
	}
}

// Latest returns the cached feed or fetches a fresh copy. Cache failures
// are logged and never fail the request.
func (s *NewsService) Latest(ctx context.Context) ([]models.Article, error) {
	if s.cache != nil {
		articles, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.WithError(err).Warn("news cache read failed")
		} else if ok {
			s.metrics.ObserveNews("cache")
			return articles, nil
		}
	}

	articles, err := s.fetcher.FetchNews(ctx)
	if err != nil {
		s.metrics.ObserveNews("error")
		logger.WithError(err).Error("news fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrNewsUnavailable, err)
	}
	s.metrics.ObserveNews("upstream")

	if s.cache != nil {
		if err := s.cache.Set(ctx, articles); err != nil {
			logger.WithError(err).Warn("news cache write failed")
		}
	}
	return articles, nil
}

// Article returns the article at index in the current feed
func (s *NewsService) Article(ctx context.Context, index int) (models.Article, error) {
	articles, err := s.Latest(ctx)
	if err != nil {
		return models.Article{}, err
	}
	if index < 0 || index >= len(articles) {
		return models.Article{}, ErrArticleNotFound
	}
	return articles[index], nil
}
