package news

import (
	"context"
	"strconv"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// companyNewsWindow is how far back a ticker search looks.
const companyNewsWindow = 7 * 24 * time.Hour

type FinnHubClient struct {
	client *finnhub.DefaultApiService
	now    func() time.Time
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client, now: time.Now}
}

func (c *FinnHubClient) Search(ctx context.Context, topic string, limit int) ([]Article, error) {
	if IsTicker(topic) {
		to := c.now()
		from := to.Add(-companyNewsWindow)

		res, _, err := c.client.CompanyNews(ctx).
			Symbol(topic).
			From(from.Format("2006-01-02")).
			To(to.Format("2006-01-02")).
			Execute()
		if err != nil {
			return nil, err
		}

		articles := make([]Article, 0, len(res))
		for _, news := range res {
			if len(articles) >= limit {
				break
			}
			articles = append(articles, c.toArticle(finnhubItem{
				id: news.Id, headline: news.Headline, summary: news.Summary, url: news.Url,
				datetime: news.Datetime, source: news.Source, related: news.Related,
			}))
		}
		return articles, nil
	}

	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(res))
	for _, news := range res {
		articles = append(articles, c.toArticle(finnhubItem{
			id: news.Id, headline: news.Headline, summary: news.Summary, url: news.Url,
			datetime: news.Datetime, source: news.Source, related: news.Related,
		}))
	}

	return filterByTopic(articles, topic, limit), nil
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// finnhubItem holds the fields shared by the market and company news models.
type finnhubItem struct {
	id       *int64
	headline *string
	summary  *string
	url      *string
	datetime *int64
	source   *string
	related  *string
}

func (c *FinnHubClient) toArticle(news finnhubItem) Article {
	a := Article{
		Source: c.Name(),
	}

	if news.id != nil {
		a.ExternalID = strconv.FormatInt(*news.id, 10)
	}

	if news.headline != nil {
		a.Headline = *news.headline
	}

	if news.summary != nil {
		a.Detail = *news.summary
	}

	if news.url != nil {
		a.URL = *news.url
	}

	if news.datetime != nil {
		a.PublishedAt = time.Unix(*news.datetime, 0)
	}

	if news.source != nil {
		a.Publisher = *news.source
	}

	if news.related != nil && *news.related != "" {
		a.Symbols = strings.Split(*news.related, ",")
	} else {
		a.Symbols = []string{}
	}

	return a
}
