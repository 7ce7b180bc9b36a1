package news

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// scanLimit is how many recent items a keyword search pulls before filtering.
const scanLimit = 200

type Article struct {
	ExternalID  string
	Headline    string
	Detail      string
	URL         string
	Source      string
	PublishedAt time.Time
	Symbols     []string
	Publisher   string
}

type Searcher interface {
	Name() string
	Search(ctx context.Context, topic string, limit int) ([]Article, error)
}

// IsTicker reports whether topic looks like an exchange symbol such as AAPL
// rather than free text.
func IsTicker(topic string) bool {
	topic = strings.TrimSpace(topic)
	if len(topic) == 0 || len(topic) > 5 {
		return false
	}
	for _, r := range topic {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return unicode.IsUpper(rune(topic[0]))
}

func matchesTopic(a Article, topic string) bool {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Headline), topic) ||
		strings.Contains(strings.ToLower(a.Detail), topic)
}

func filterByTopic(articles []Article, topic string, limit int) []Article {
	out := make([]Article, 0, min(limit, len(articles)))
	for _, a := range articles {
		if len(out) >= limit {
			break
		}
		if matchesTopic(a, topic) {
			out = append(out, a)
		}
	}
	return out
}
