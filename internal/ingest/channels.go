package ingest

import "eegcli/pkg/contracts/domain"

// deviceRule binds a column-count predicate to a device kind and the
// 0-based half-open column range holding its EEG channels. Rules are
// evaluated in order and the first match wins; the thresholds are
// hard-coded export widths of known boards, not a general heuristic.
type deviceRule struct {
	matches func(cols int) bool
	kind    domain.DeviceKind
	slice   func(cols int) (lo, hi int)
}

var deviceRules = []deviceRule{
	{
		// Cyton: sample index, 8 EEG channels, accelerometer/aux columns.
		matches: func(c int) bool { return c >= 11 },
		kind:    domain.DeviceCyton,
		slice:   func(c int) (int, int) { return 1, 9 },
	},
	{
		// Ganglion: sample index, 4 EEG channels, optional aux columns.
		matches: func(c int) bool { return c >= 5 },
		kind:    domain.DeviceGanglion,
		slice:   func(c int) (int, int) { return 1, 5 },
	},
	{
		// Anything narrower: everything after the sample index column.
		matches: func(c int) bool { return true },
		kind:    domain.DeviceGeneric,
		slice: func(c int) (int, int) {
			if c <= 1 {
				return 0, 0
			}
			return 1, c
		},
	},
}

// ExtractChannels classifies the device from the cleaned matrix's column
// count and slices out the EEG channel columns. No validation beyond column
// count happens here: a non-EEG file wide enough to look like a Cyton export
// is classified as one, and callers needing certainty should cross-check the
// header tokens.
func ExtractChannels(m domain.Matrix) (domain.Matrix, domain.DeviceKind) {
	cols := m.Cols()
	for _, rule := range deviceRules {
		if !rule.matches(cols) {
			continue
		}
		lo, hi := rule.slice(cols)
		if lo >= hi || m.Rows() == 0 {
			return domain.Matrix{}, rule.kind
		}
		channels := make(domain.Matrix, m.Rows())
		for i := range m {
			row := make([]float64, hi-lo)
			copy(row, m[i][lo:hi])
			channels[i] = row
		}
		return channels, rule.kind
	}
	// Unreachable: the last rule matches every width.
	return domain.Matrix{}, domain.DeviceGeneric
}
