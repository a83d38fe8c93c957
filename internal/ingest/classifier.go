package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineKind is the classification of a single raw export line.
type LineKind int

const (
	// LineMetadata covers comment banners, device headers and blank lines.
	LineMetadata LineKind = iota
	// LineData covers numeric sample rows.
	LineData
)

// String returns a readable name for the kind.
func (k LineKind) String() string {
	if k == LineData {
		return "data"
	}
	return "metadata"
}

// ClassifyLine decides whether a raw line is metadata or sample data.
// Board exports start metadata and header rows with alphabetic text or a
// comment marker, while sample rows start with a digit, sign or decimal
// point. The classification depends on line content only.
func ClassifyLine(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineMetadata
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	if unicode.IsLetter(r) || r == '%' || r == '#' {
		return LineMetadata
	}
	return LineData
}
