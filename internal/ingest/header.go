package ingest

import "strings"

// ParseResult locates the numeric block inside a raw export.
type ParseResult struct {
	// HeaderTokens holds the trimmed, non-empty tokens of the header line,
	// or nil when the file has no header line.
	HeaderTokens []string
	// DataStart is the 1-based index of the first data-classified line.
	DataStart int
}

// splitTokens splits a line on commas and tabs. Empty tokens are kept so
// that a missing trailing cell still occupies its column.
func splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '\t'
	})
}

// splitCells splits a data line on commas and tabs, preserving empty cells.
func splitCells(line string) []string {
	return strings.Split(strings.ReplaceAll(line, "\t", ","), ",")
}

// DetectHeader scans lines for the first data line and captures the header
// line immediately preceding it, if any. Only the directly adjacent line is
// treated as the header; earlier metadata lines are skipped without
// inspection, so a column-name row separated from the data by a blank line
// is intentionally not recovered.
func DetectHeader(lines []string) (ParseResult, error) {
	if len(lines) == 0 {
		return ParseResult{}, NewEmptyFileError("")
	}

	dataStart := 0
	for i, line := range lines {
		if ClassifyLine(line) == LineData {
			dataStart = i + 1
			break
		}
	}
	if dataStart == 0 {
		return ParseResult{}, NewNoDataError("")
	}

	result := ParseResult{DataStart: dataStart}
	if dataStart > 1 {
		header := lines[dataStart-2]
		for _, tok := range splitTokens(header) {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				result.HeaderTokens = append(result.HeaderTokens, tok)
			}
		}
	}
	return result, nil
}
