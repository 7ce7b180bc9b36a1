package sentiment

import (
	"shadowpulse/internal/model"

	"github.com/jonreiter/govader"
)

// Compound scores at or beyond these bounds are no longer neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

type Scorer interface {
	Score(text string) float64
}

type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound polarity of text, in [-1, 1].
func (v *VaderAnalyzer) Score(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

func Mood(score float64) string {
	switch {
	case score >= PositiveThreshold:
		return model.MoodPositive
	case score <= NegativeThreshold:
		return model.MoodNegative
	default:
		return model.MoodNeutral
	}
}
