package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Chain queries its sources in order and returns the first non-empty result.
// Each source is asked once; the joined errors are returned only when every
// source failed.
type Chain struct {
	sources []Searcher
}

func NewChain(sources ...Searcher) *Chain {
	return &Chain{sources: sources}
}

func (c *Chain) Name() string {
	return "Chain"
}

func (c *Chain) Len() int {
	return len(c.sources)
}

func (c *Chain) Search(ctx context.Context, topic string, limit int) ([]Article, error) {
	var errs []error

	for _, source := range c.sources {
		articles, err := source.Search(ctx, topic, limit)
		if err != nil {
			slog.Warn("news source failed", "source", source.Name(), "topic", topic, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", source.Name(), err))
			continue
		}

		if len(articles) > 0 {
			slog.Info("news source answered", "source", source.Name(), "topic", topic, "count", len(articles))
			return articles, nil
		}
	}

	if len(errs) == len(c.sources) && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return []Article{}, nil
}
