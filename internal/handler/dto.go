package handler

import (
	"time"

	"shadowpulse/internal/model"
)

type HeadlineResponse struct {
	Title     string  `json:"title"`
	Source    string  `json:"source"`
	Date      string  `json:"date"`
	URL       string  `json:"url"`
	Sentiment float64 `json:"sentiment"`
	Mood      string  `json:"mood"`
}

type AnalysisResponse struct {
	Topic            string             `json:"topic"`
	Summary          string             `json:"summary"`
	ModelUsed        string             `json:"model_used"`
	PromptVersion    string             `json:"prompt_version"`
	AverageSentiment float64            `json:"average_sentiment"`
	Positive         int                `json:"positive"`
	Neutral          int                `json:"neutral"`
	Negative         int                `json:"negative"`
	Headlines        []HeadlineResponse `json:"headlines"`
	AnalyzedAt       string             `json:"analyzed_at"`
}

type ReportLogResponse struct {
	ID            int64  `json:"id"`
	Topic         string `json:"topic"`
	GeneratedAt   string `json:"generated_at"`
	HeadlineCount int    `json:"headline_count"`
	SizeBytes     int    `json:"size_bytes"`
}

func toHeadlineResponse(h model.ScoredHeadline) HeadlineResponse {
	return HeadlineResponse{
		Title:     h.Title,
		Source:    h.Source,
		Date:      h.Date,
		URL:       h.URL,
		Sentiment: h.Sentiment,
		Mood:      h.Mood,
	}
}

func toAnalysisResponse(a *model.Analysis) AnalysisResponse {
	headlines := make([]HeadlineResponse, len(a.Headlines))
	for i, h := range a.Headlines {
		headlines[i] = toHeadlineResponse(h)
	}

	return AnalysisResponse{
		Topic:            a.Topic,
		Summary:          a.Summary,
		ModelUsed:        a.ModelUsed,
		PromptVersion:    a.PromptVersion,
		AverageSentiment: a.AverageSentiment,
		Positive:         a.Positive,
		Neutral:          a.Neutral,
		Negative:         a.Negative,
		Headlines:        headlines,
		AnalyzedAt:       a.AnalyzedAt.Format(time.RFC3339),
	}
}

func toReportLogResponse(l model.ReportLog) ReportLogResponse {
	return ReportLogResponse{
		ID:            l.ID,
		Topic:         l.Topic,
		GeneratedAt:   l.GeneratedAt.Format(time.RFC3339),
		HeadlineCount: l.HeadlineCount,
		SizeBytes:     l.SizeBytes,
	}
}
