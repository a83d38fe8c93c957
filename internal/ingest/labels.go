package ingest

import "fmt"

// GenerateLabels assigns one label per extracted channel. Header tokens are
// used when there are enough of them to cover the channels plus the leading
// sample-index column; otherwise labels are synthesized from the prefix.
// Header-derived labels are passed through as-is, without deduplication or
// sanitization.
func GenerateLabels(headerTokens []string, n int, prefix string) []string {
	if n <= 0 {
		return nil
	}
	labels := make([]string, n)
	if len(headerTokens) >= n+1 {
		copy(labels, headerTokens[1:n+1])
		return labels
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("%s_Ch%d", prefix, i+1)
	}
	return labels
}
