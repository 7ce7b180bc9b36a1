package report

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Replacement is written in place of every character Latin-1 cannot encode.
const Replacement = '?'

var latin1 = charmap.ISO8859_1

// Sanitize maps text onto the Latin-1 repertoire used by the PDF core fonts.
// Unsupported runes, including invalid UTF-8 bytes, become Replacement.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range text {
		if _, ok := latin1.EncodeRune(r); !ok {
			sb.WriteRune(Replacement)
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// encodeLatin1 converts sanitized text into the single-byte form fpdf expects.
// Sanitize guarantees every rune is encodable, so a miss here is a bug.
func encodeLatin1(text string) string {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := latin1.EncodeRune(r)
		if !ok {
			panic("report: unsanitized rune " + string(r))
		}
		out = append(out, b)
	}
	return string(out)
}
