package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shadowpulse/internal/model"
	"shadowpulse/internal/report"
	"shadowpulse/pkg/llm"
	"shadowpulse/pkg/news"
	"shadowpulse/pkg/sentiment"
)

var (
	ErrEmptyTopic  = errors.New("topic is required")
	ErrNoHeadlines = errors.New("no headlines found")
)

type ReportStore interface {
	SaveReport(ctx context.Context, entry *model.ReportLog) error
}

type Download struct {
	FileName    string
	ContentType string
	Data        []byte
	GeneratedAt time.Time
}

// Dashboard runs one topic request end to end: search, score, summarize and,
// for exports, render. Every collaborator is called once per request.
type Dashboard struct {
	searcher   news.Searcher
	scorer     sentiment.Scorer
	summarizer llm.Summarizer
	pipeline   *report.Pipeline
	reports    ReportStore
	limit      int
	now        func() time.Time
}

func NewDashboard(searcher news.Searcher, scorer sentiment.Scorer, summarizer llm.Summarizer, pipeline *report.Pipeline, limit int) *Dashboard {
	return &Dashboard{
		searcher:   searcher,
		scorer:     scorer,
		summarizer: summarizer,
		pipeline:   pipeline,
		limit:      limit,
		now:        time.Now,
	}
}

// WithReportStore enables logging of exported reports.
func (d *Dashboard) WithReportStore(store ReportStore) *Dashboard {
	d.reports = store
	return d
}

// Headlines searches and scores without asking the model for a summary.
func (d *Dashboard) Headlines(ctx context.Context, topic string) ([]model.ScoredHeadline, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	articles, err := d.searcher.Search(ctx, topic, d.limit)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", topic, err)
	}

	if len(articles) == 0 {
		return nil, ErrNoHeadlines
	}

	scored := make([]model.ScoredHeadline, 0, len(articles))
	for _, a := range articles {
		score := d.scorer.Score(a.Headline)
		scored = append(scored, model.ScoredHeadline{
			HeadlineRecord: toRecord(a),
			Sentiment:      score,
			Mood:           sentiment.Mood(score),
		})
	}

	return scored, nil
}

func (d *Dashboard) Analyze(ctx context.Context, topic string) (*model.Analysis, error) {
	topic = strings.TrimSpace(topic)

	headlines, err := d.Headlines(ctx, topic)
	if err != nil {
		return nil, err
	}

	analysis := &model.Analysis{
		Topic:      topic,
		Headlines:  headlines,
		AnalyzedAt: d.now(),
	}
	tally(analysis)

	summary, err := d.summarizer.Summarize(ctx, topic, analysis.Titles())
	if err != nil {
		return nil, fmt.Errorf("summarize %q: %w", topic, err)
	}

	analysis.Summary = summary.Text
	analysis.ModelUsed = summary.ModelUsed
	analysis.PromptVersion = summary.PromptVersion

	slog.Info("analysis complete", "topic", topic, "headlines", len(headlines), "average_sentiment", analysis.AverageSentiment,
		"model_used", summary.ModelUsed, "prompt_version", summary.PromptVersion)
	return analysis, nil
}

// Report analyzes the topic and renders the PDF export.
func (d *Dashboard) Report(ctx context.Context, topic string) (*Download, error) {
	analysis, err := d.Analyze(ctx, topic)
	if err != nil {
		return nil, err
	}
	return d.Export(ctx, analysis)
}

// Export renders an analysis that has already been produced, without asking
// any collaborator again.
func (d *Dashboard) Export(ctx context.Context, analysis *model.Analysis) (*Download, error) {
	records := analysis.Records()
	data, stamp, err := d.pipeline.Build(analysis.Topic, analysis.Summary, records)
	if err != nil {
		return nil, fmt.Errorf("build report %q: %w", analysis.Topic, err)
	}

	if d.reports != nil {
		entry := &model.ReportLog{
			Topic:         analysis.Topic,
			GeneratedAt:   stamp,
			HeadlineCount: min(len(records), model.MaxReportHeadlines),
			SizeBytes:     len(data),
			Summary:       analysis.Summary,
		}
		if err := d.reports.SaveReport(ctx, entry); err != nil {
			slog.Error("error saving report log", "topic", analysis.Topic, "error", err)
		}
	}

	return &Download{
		FileName:    report.FileName(analysis.Topic),
		ContentType: report.ContentType,
		Data:        data,
		GeneratedAt: stamp,
	}, nil
}

func toRecord(a news.Article) model.HeadlineRecord {
	source := a.Publisher
	if source == "" {
		source = a.Source
	}

	var date string
	if !a.PublishedAt.IsZero() {
		date = a.PublishedAt.Format("2006-01-02")
	}

	return model.HeadlineRecord{
		Title:  a.Headline,
		Source: source,
		Date:   date,
		URL:    a.URL,
	}
}

func tally(a *model.Analysis) {
	if len(a.Headlines) == 0 {
		return
	}

	var total float64
	for _, h := range a.Headlines {
		total += h.Sentiment
		switch h.Mood {
		case model.MoodPositive:
			a.Positive++
		case model.MoodNegative:
			a.Negative++
		default:
			a.Neutral++
		}
	}
	a.AverageSentiment = total / float64(len(a.Headlines))
}
