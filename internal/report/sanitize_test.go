package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-playground/assert/v2"
)

func representable(s string) bool {
	for _, r := range s {
		if _, ok := latin1.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "ascii unchanged", input: "Prices rose.", want: "Prices rose."},
		{name: "latin-1 accents kept", input: "Café Münster ½", want: "Café Münster ½"},
		{name: "smart quote replaced", input: "Market’s rally", want: "Market?s rally"},
		{name: "emoji replaced by one character", input: "Up \U0001F680 today", want: "Up ? today"},
		{name: "non-latin script", input: "株価", want: "??"},
		{name: "euro sign is not latin-1", input: "€5", want: "?5"},
		{name: "invalid utf-8 byte", input: "a\xffb", want: "a?b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeRepresentableAndIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"“quoted” — dash…",
		"Ünïcödé ✓ 🚀 中文 \x00\x7f\u0080ÿĀ",
		strings.Repeat("’", 50),
		"\xc3\x28 broken",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, true, representable(once))
		assert.Equal(t, true, utf8.ValidString(once))
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestEncodeLatin1(t *testing.T) {
	assert.Equal(t, "caf\xe9", encodeLatin1("café"))
	assert.Equal(t, "?", encodeLatin1(Sanitize("’")))
}

func TestEncodeLatin1PanicsOnUnsanitizedText(t *testing.T) {
	defer func() {
		assert.NotEqual(t, nil, recover())
	}()
	encodeLatin1("’")
}
