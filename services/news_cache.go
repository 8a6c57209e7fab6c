package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"legal_ai_site/models"

	backend "github.com/redis/go-redis/v9"
)

const defaultNewsCacheKey = "legalai:news:latest"

// NewsCache stores the last fetched feed in Redis with a TTL
type NewsCache struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

// NewNewsCache wraps an existing client
func NewNewsCache(client *backend.Client, ttl time.Duration) *NewsCache {
	return &NewsCache{
		client: client,
		key:    defaultNewsCacheKey,
		ttl:    ttl,
	}
}

// NewNewsCacheFromURL parses a redis:// URL and connects lazily
func NewNewsCacheFromURL(redisURL string, ttl time.Duration) (*NewsCache, error) {
	opts, err := backend.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid news cache URL: %w", err)
	}
	return NewNewsCache(backend.NewClient(opts), ttl), nil
}

// Get returns the cached feed. ok is false on a miss.
func (c *NewsCache) Get(ctx context.Context) ([]models.Article, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read news cache: %w", err)
	}

	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached news: %w", err)
	}
	return articles, true, nil
}

// Set replaces the cached feed
func (c *NewsCache) Set(ctx context.Context, articles []models.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("failed to marshal news: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write news cache: %w", err)
	}
	return nil
}

// Ping checks the connection, used by the health endpoint
func (c *NewsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *NewsCache) Close() error {
	return c.client.Close()
}
