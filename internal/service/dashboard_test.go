package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"shadowpulse/internal/model"
	"shadowpulse/internal/report"
	"shadowpulse/pkg/llm"
	"shadowpulse/pkg/news"

	"github.com/go-playground/assert/v2"
)

type fakeSearcher struct {
	articles []news.Article
	err      error
	topic    string
	calls    int
}

func (f *fakeSearcher) Name() string { return "fake" }

func (f *fakeSearcher) Search(ctx context.Context, topic string, limit int) ([]news.Article, error) {
	f.calls++
	f.topic = topic
	return f.articles, f.err
}

type fakeScorer map[string]float64

func (f fakeScorer) Score(text string) float64 { return f[text] }

// fakeSummarizer answers with text, or with texts[n] on the n-th call.
type fakeSummarizer struct {
	text   string
	texts  []string
	err    error
	titles []string
	calls  int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, topic string, titles []string) (*llm.SummaryResult, error) {
	f.calls++
	f.titles = titles
	if f.err != nil {
		return nil, f.err
	}
	text := f.text
	if len(f.texts) > 0 {
		text = f.texts[(f.calls-1)%len(f.texts)]
	}
	return &llm.SummaryResult{Text: text, ModelUsed: "fake-model", PromptVersion: "v-test"}, nil
}

type fakeReportStore struct {
	saved []model.ReportLog
	err   error
}

func (f *fakeReportStore) SaveReport(ctx context.Context, entry *model.ReportLog) error {
	f.saved = append(f.saved, *entry)
	return f.err
}

func articles(n int) []news.Article {
	out := make([]news.Article, n)
	for i := range out {
		out[i] = news.Article{
			Headline:    fmt.Sprintf("Headline %d", i),
			Publisher:   fmt.Sprintf("Pub %d", i),
			URL:         fmt.Sprintf("https://example.com/%d", i),
			PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return out
}

func newTestDashboard(s *fakeSearcher, sum *fakeSummarizer, scores fakeScorer) *Dashboard {
	pipeline := report.NewPipeline(report.NewComposer(report.WithCompression(false)))
	return NewDashboard(s, scores, sum, pipeline, 10)
}

func TestAnalyze(t *testing.T) {
	s := &fakeSearcher{articles: articles(3)}
	sum := &fakeSummarizer{text: "Mixed coverage."}
	scores := fakeScorer{"Headline 0": 0.6, "Headline 1": -0.3, "Headline 2": 0}

	a, err := newTestDashboard(s, sum, scores).Analyze(context.Background(), "  Bitcoin ")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Bitcoin", s.topic)
	assert.Equal(t, "Bitcoin", a.Topic)
	assert.Equal(t, "Mixed coverage.", a.Summary)
	assert.Equal(t, "fake-model", a.ModelUsed)
	assert.Equal(t, "v-test", a.PromptVersion)
	assert.Equal(t, []string{"Headline 0", "Headline 1", "Headline 2"}, sum.titles)
	assert.Equal(t, 1, a.Positive)
	assert.Equal(t, 1, a.Negative)
	assert.Equal(t, 1, a.Neutral)
	assert.Equal(t, true, a.AverageSentiment > 0.099 && a.AverageSentiment < 0.101)

	h := a.Headlines[1]
	assert.Equal(t, "Pub 1", h.Source)
	assert.Equal(t, "2024-01-01", h.Date)
	assert.Equal(t, model.MoodNegative, h.Mood)
}

func TestAnalyzeEmptyTopic(t *testing.T) {
	s := &fakeSearcher{}
	_, err := newTestDashboard(s, &fakeSummarizer{}, fakeScorer{}).Analyze(context.Background(), "   ")

	assert.Equal(t, true, errors.Is(err, ErrEmptyTopic))
	assert.Equal(t, 0, s.calls)
}

func TestAnalyzeNoHeadlinesSkipsSummary(t *testing.T) {
	sum := &fakeSummarizer{text: "unused"}
	_, err := newTestDashboard(&fakeSearcher{}, sum, fakeScorer{}).Analyze(context.Background(), "volcano")

	assert.Equal(t, true, errors.Is(err, ErrNoHeadlines))
	assert.Equal(t, 0, sum.calls)
}

func TestAnalyzeSearchError(t *testing.T) {
	down := errors.New("down")
	sum := &fakeSummarizer{}
	_, err := newTestDashboard(&fakeSearcher{err: down}, sum, fakeScorer{}).Analyze(context.Background(), "oil")

	assert.Equal(t, true, errors.Is(err, down))
	assert.Equal(t, 0, sum.calls)
}

func TestAnalyzeSummaryError(t *testing.T) {
	_, err := newTestDashboard(&fakeSearcher{articles: articles(1)}, &fakeSummarizer{err: llm.ErrEmptySummary}, fakeScorer{}).
		Analyze(context.Background(), "oil")

	assert.Equal(t, true, errors.Is(err, llm.ErrEmptySummary))
}

func TestReport(t *testing.T) {
	store := &fakeReportStore{}
	d := newTestDashboard(&fakeSearcher{articles: articles(10)}, &fakeSummarizer{text: "Prices rose."}, fakeScorer{}).
		WithReportStore(store)

	dl, err := d.Report(context.Background(), "Bitcoin")

	assert.Equal(t, nil, err)
	assert.Equal(t, "ShadowPulse_Bitcoin.pdf", dl.FileName)
	assert.Equal(t, "application/pdf", dl.ContentType)
	assert.Equal(t, true, bytes.Contains(dl.Data, []byte(`Headline 7 \(Source: Pub 7\)`)))
	assert.Equal(t, false, bytes.Contains(dl.Data, []byte(`Headline 8 \(Source: Pub 8\)`)))

	assert.Equal(t, 1, len(store.saved))
	assert.Equal(t, 8, store.saved[0].HeadlineCount)
	assert.Equal(t, len(dl.Data), store.saved[0].SizeBytes)
}

func TestReportStoreFailureDoesNotFailDownload(t *testing.T) {
	store := &fakeReportStore{err: errors.New("DB down")}
	d := newTestDashboard(&fakeSearcher{articles: articles(2)}, &fakeSummarizer{text: "ok"}, fakeScorer{}).
		WithReportStore(store)

	dl, err := d.Report(context.Background(), "Oil")

	assert.Equal(t, nil, err)
	assert.NotEqual(t, 0, len(dl.Data))
}

func TestExportUsesDisplayedAnalysis(t *testing.T) {
	s := &fakeSearcher{articles: articles(3)}
	sum := &fakeSummarizer{texts: []string{"Rally continues.", "Selloff deepens."}}
	d := newTestDashboard(s, sum, fakeScorer{})

	a, err := d.Analyze(context.Background(), "Bitcoin")
	assert.Equal(t, nil, err)

	dl, err := d.Export(context.Background(), a)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Rally continues.", a.Summary)
	assert.Equal(t, true, bytes.Contains(dl.Data, []byte("Rally continues.")))
	assert.Equal(t, false, bytes.Contains(dl.Data, []byte("Selloff deepens.")))
	assert.Equal(t, 1, sum.calls)
	assert.Equal(t, 1, s.calls)
}

func TestExportLogsDocumentTimestamp(t *testing.T) {
	stamp := time.Date(2024, 3, 5, 14, 30, 45, 0, time.UTC)
	pipeline := report.NewPipeline(report.NewComposer(report.WithCompression(false))).
		WithClock(func() time.Time { return stamp })
	store := &fakeReportStore{}
	d := NewDashboard(&fakeSearcher{articles: articles(2)}, fakeScorer{}, &fakeSummarizer{text: "ok"}, pipeline, 10).
		WithReportStore(store)
	d.now = func() time.Time { return stamp.Add(time.Hour) }

	dl, err := d.Report(context.Background(), "Oil")

	assert.Equal(t, nil, err)
	assert.Equal(t, stamp, dl.GeneratedAt)
	assert.Equal(t, true, bytes.Contains(dl.Data, []byte("Generated: 2024-03-05 14:30")))
	assert.Equal(t, 1, len(store.saved))
	assert.Equal(t, stamp, store.saved[0].GeneratedAt)
}

func TestToRecordFallsBackToSource(t *testing.T) {
	r := toRecord(news.Article{Headline: "x", Source: "FinnHub"})

	assert.Equal(t, "FinnHub", r.Source)
	assert.Equal(t, "", r.Date)
}
