package report

import (
	"bytes"
	"fmt"
	"time"

	"shadowpulse/internal/model"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Banner          = "ShadowPulse Intelligence"
	SummaryHeader   = "Executive AI Summary:"
	HeadlinesHeader = "Top Headlines Analyzed:"
	TimestampLayout = "2006-01-02 15:04"

	fontFamily = "Arial"
)

type blockKind int

const (
	kindCell blockKind = iota
	kindWrapped
	kindGap
)

// Block is one positioned element of the fixed report layout.
type Block struct {
	kind     blockKind
	headline bool
	Style    string
	Size     float64
	Width    float64
	Height   float64
	Align    string
	Text     string
}

// Headline reports whether the block belongs to the headline list.
func (b Block) Headline() bool {
	return b.headline
}

type Option func(*Composer)

// WithCompression toggles zlib compression of page content streams.
func WithCompression(enabled bool) Option {
	return func(c *Composer) {
		c.compress = enabled
	}
}

type Composer struct {
	compress bool
}

func NewComposer(opts ...Option) *Composer {
	c := &Composer{compress: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Layout returns the report blocks in render order with every text field
// already sanitized.
func Layout(r model.Report) []Block {
	blocks := []Block{
		{kind: kindCell, Style: "B", Size: 16, Width: 200, Height: 10, Align: "C",
			Text: Sanitize(fmt.Sprintf("%s: %s", Banner, Upper(r.Topic)))},
		{kind: kindCell, Size: 10, Width: 200, Height: 10, Align: "C",
			Text: Sanitize("Generated: " + r.GeneratedAt.Format(TimestampLayout))},
		{kind: kindGap, Height: 10},
		{kind: kindCell, Style: "B", Size: 12, Height: 10, Text: SummaryHeader},
		{kind: kindWrapped, Size: 11, Height: 8, Text: Sanitize(r.Summary)},
		{kind: kindGap, Height: 10},
		{kind: kindCell, Style: "B", Size: 12, Height: 10, Text: HeadlinesHeader},
	}

	for _, h := range limitHeadlines(r.Headlines) {
		blocks = append(blocks, Block{
			kind:     kindWrapped,
			headline: true,
			Size:     10,
			Height:   7,
			Text:     Sanitize(HeadlineLine(h)),
		})
	}

	return blocks
}

// Upper applies full Unicode case mapping, so "ß" becomes "SS".
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// HeadlineLine formats a single entry of the headline list.
func HeadlineLine(h model.HeadlineRecord) string {
	return fmt.Sprintf("- %s (Source: %s)", h.Title, h.Source)
}

func limitHeadlines(headlines []model.HeadlineRecord) []model.HeadlineRecord {
	if len(headlines) > model.MaxReportHeadlines {
		return headlines[:model.MaxReportHeadlines]
	}
	return headlines
}

// Compose renders the report into PDF bytes. Output is byte-for-byte stable
// for identical inputs within the same minute of generatedAt.
func (c *Composer) Compose(topic, summary string, headlines []model.HeadlineRecord, generatedAt time.Time) ([]byte, error) {
	stamp := generatedAt.Truncate(time.Minute)
	r := model.Report{
		Topic:       topic,
		GeneratedAt: generatedAt,
		Summary:     summary,
		Headlines:   limitHeadlines(headlines),
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(c.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetTitle(encodeLatin1(Sanitize(Banner+": "+topic)), false)
	pdf.AddPage()

	for _, b := range Layout(r) {
		switch b.kind {
		case kindGap:
			pdf.Ln(b.Height)
		case kindCell:
			pdf.SetFont(fontFamily, b.Style, b.Size)
			pdf.CellFormat(b.Width, b.Height, encodeLatin1(b.Text), "", 1, b.Align, false, 0, "")
		case kindWrapped:
			pdf.SetFont(fontFamily, b.Style, b.Size)
			pdf.MultiCell(b.Width, b.Height, encodeLatin1(b.Text), "", "", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
