package report

import (
	"time"

	"shadowpulse/internal/model"
)

const (
	ContentType = "application/pdf"
	product     = "ShadowPulse"
)

type Pipeline struct {
	composer *Composer
	now      func() time.Time
}

func NewPipeline(composer *Composer) *Pipeline {
	return &Pipeline{composer: composer, now: time.Now}
}

// WithClock replaces the wall clock used to stamp reports.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// BuildReport stamps the current time and hands everything to the composer
// untouched. Composer errors are returned as is.
func (p *Pipeline) BuildReport(topic, summary string, headlines []model.HeadlineRecord) ([]byte, error) {
	data, _, err := p.Build(topic, summary, headlines)
	return data, err
}

// Build is BuildReport that also returns the timestamp printed in the document.
func (p *Pipeline) Build(topic, summary string, headlines []model.HeadlineRecord) ([]byte, time.Time, error) {
	stamp := p.now()
	data, err := p.composer.Compose(topic, summary, headlines, stamp)
	if err != nil {
		return nil, time.Time{}, err
	}
	return data, stamp, nil
}

// FileName is the download name offered for a topic's report.
func FileName(topic string) string {
	return product + "_" + topic + ".pdf"
}
