package model

import "time"

const (
	MoodPositive = "positive"
	MoodNeutral  = "neutral"
	MoodNegative = "negative"
)

type HeadlineRecord struct {
	Title  string
	Source string
	Date   string
	URL    string
}

type ScoredHeadline struct {
	HeadlineRecord
	Sentiment float64
	Mood      string
}

type Analysis struct {
	Topic            string
	Headlines        []ScoredHeadline
	Summary          string
	ModelUsed        string
	PromptVersion    string
	AverageSentiment float64
	Positive         int
	Neutral          int
	Negative         int
	AnalyzedAt       time.Time
}

// Records strips the sentiment columns, preserving order.
func (a *Analysis) Records() []HeadlineRecord {
	records := make([]HeadlineRecord, len(a.Headlines))
	for i, h := range a.Headlines {
		records[i] = h.HeadlineRecord
	}
	return records
}

// Titles returns the headline titles in display order.
func (a *Analysis) Titles() []string {
	titles := make([]string, len(a.Headlines))
	for i, h := range a.Headlines {
		titles[i] = h.Title
	}
	return titles
}
