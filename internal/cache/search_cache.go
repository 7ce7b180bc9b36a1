package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shadowpulse/pkg/news"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shadowpulse:search:"

// SearchCache memoizes search results in Redis for a short TTL so the
// dashboard, chart and report for one topic share a single upstream call.
// Cache failures degrade to a direct search.
type SearchCache struct {
	next  news.Searcher
	redis *redis.Client
	ttl   time.Duration
}

func NewSearchCache(next news.Searcher, client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{next: next, redis: client, ttl: ttl}
}

func (c *SearchCache) Name() string {
	return c.next.Name()
}

func (c *SearchCache) Search(ctx context.Context, topic string, limit int) ([]news.Article, error) {
	key := cacheKey(topic, limit)

	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var articles []news.Article
		if err := json.Unmarshal(raw, &articles); err == nil {
			slog.Debug("search cache hit", "topic", topic)
			return articles, nil
		}
		slog.Warn("discarding corrupt cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("search cache unavailable", "error", err)
	}

	articles, err := c.next.Search(ctx, topic, limit)
	if err != nil {
		return nil, err
	}

	// Empty results are not cached so a later attempt can still find news.
	if len(articles) == 0 {
		return articles, nil
	}

	payload, err := json.Marshal(articles)
	if err != nil {
		return articles, nil
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("error writing search cache", "key", key, "error", err)
	}

	return articles, nil
}

func (c *SearchCache) Ping(ctx context.Context) error {
	return c.redis.Ping(ctx).Err()
}

func cacheKey(topic string, limit int) string {
	return fmt.Sprintf("%s%d:%s", keyPrefix, limit, strings.ToLower(strings.TrimSpace(topic)))
}
