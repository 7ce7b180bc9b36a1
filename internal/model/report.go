package model

import "time"

// MaxReportHeadlines caps the headline block of an exported report.
const MaxReportHeadlines = 8

type Report struct {
	Topic       string
	GeneratedAt time.Time
	Summary     string
	Headlines   []HeadlineRecord
}

type ReportLog struct {
	ID            int64
	Topic         string
	GeneratedAt   time.Time
	HeadlineCount int
	SizeBytes     int
	Summary       string
}
