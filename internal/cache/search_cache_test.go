package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"shadowpulse/pkg/news"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/assert/v2"
	"github.com/redis/go-redis/v9"
)

type countingSearcher struct {
	articles []news.Article
	err      error
	calls    int
}

func (s *countingSearcher) Name() string { return "counting" }

func (s *countingSearcher) Search(ctx context.Context, topic string, limit int) ([]news.Article, error) {
	s.calls++
	return s.articles, s.err
}

func newTestCache(t *testing.T, next news.Searcher) (*SearchCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSearchCache(next, client, time.Minute), mr
}

func TestSearchCacheHit(t *testing.T) {
	next := &countingSearcher{articles: []news.Article{{Headline: "BTC hits high", Publisher: "ReutersX"}}}
	c, _ := newTestCache(t, next)
	ctx := context.Background()

	first, err := c.Search(ctx, "Bitcoin", 10)
	assert.Equal(t, nil, err)

	second, err := c.Search(ctx, " bitcoin ", 10)
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first[0].Headline, second[0].Headline)
	assert.Equal(t, "ReutersX", second[0].Publisher)
}

func TestSearchCacheExpires(t *testing.T) {
	next := &countingSearcher{articles: []news.Article{{Headline: "a"}}}
	c, mr := newTestCache(t, next)
	ctx := context.Background()

	c.Search(ctx, "oil", 10)
	mr.FastForward(2 * time.Minute)
	c.Search(ctx, "oil", 10)

	assert.Equal(t, 2, next.calls)
}

func TestSearchCacheSkipsEmptyAndErrors(t *testing.T) {
	next := &countingSearcher{}
	c, mr := newTestCache(t, next)
	ctx := context.Background()

	articles, err := c.Search(ctx, "nothing", 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
	assert.Equal(t, false, mr.Exists(cacheKey("nothing", 10)))

	next.err = errors.New("upstream down")
	_, err = c.Search(ctx, "nothing", 10)
	assert.NotEqual(t, nil, err)
}

func TestSearchCacheRedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	assert.Equal(t, nil, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	next := &countingSearcher{articles: []news.Article{{Headline: "a"}}}
	c := NewSearchCache(next, client, time.Minute)

	articles, err := c.Search(context.Background(), "oil", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
}
