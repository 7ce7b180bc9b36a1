package sentiment

import (
	"testing"

	"shadowpulse/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestMood(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 0.8, want: model.MoodPositive},
		{score: 0.05, want: model.MoodPositive},
		{score: 0.0, want: model.MoodNeutral},
		{score: 0.049, want: model.MoodNeutral},
		{score: -0.05, want: model.MoodNegative},
		{score: -1, want: model.MoodNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Mood(tt.score))
	}
}

func TestVaderScoreRange(t *testing.T) {
	v := NewVaderAnalyzer()

	good := v.Score("Stocks surge to a great record high")
	bad := v.Score("Markets crash amid terrible losses")

	assert.Equal(t, true, good > 0)
	assert.Equal(t, true, bad < 0)
	for _, s := range []float64{good, bad} {
		assert.Equal(t, true, s >= -1 && s <= 1)
	}
}
