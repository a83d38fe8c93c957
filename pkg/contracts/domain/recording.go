package domain

import "math"

// DeviceKind identifies the acquisition board a recording came from.
// It is inferred purely from the shape of the cleaned export, never
// from file names or banner text.
type DeviceKind string

const (
	DeviceCyton    DeviceKind = "cyton"
	DeviceGanglion DeviceKind = "ganglion"
	DeviceGeneric  DeviceKind = "generic"
)

// Matrix is a rectangular block of samples. Cells that failed to parse
// or were absent in the source file hold NaN rather than zero, so that
// "entirely missing" stays distinguishable from "recorded as zero".
type Matrix [][]float64

// Rows returns the number of rows in the matrix.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns, taken from the first row.
// A rectangular matrix is an invariant of the parsing pipeline.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsEmpty reports whether the matrix has no rows or no columns.
func (m Matrix) IsEmpty() bool {
	return m.Rows() == 0 || m.Cols() == 0
}

// ColumnAllMissing reports whether every cell in column j is NaN.
func (m Matrix) ColumnAllMissing(j int) bool {
	for i := range m {
		if !math.IsNaN(m[i][j]) {
			return false
		}
	}
	return len(m) > 0
}

// RowAllMissing reports whether every cell in row i is NaN.
func (m Matrix) RowAllMissing(i int) bool {
	for _, v := range m[i] {
		if !math.IsNaN(v) {
			return false
		}
	}
	return len(m[i]) > 0
}

// Recording is the structured result of ingesting one board export file.
// It is produced once by the ingest pipeline and never mutated afterwards;
// two recordings share no backing storage.
type Recording struct {
	Source       string     `json:"source"`
	Device       DeviceKind `json:"device"`
	HeaderTokens []string   `json:"header_tokens,omitempty"`
	DataStart    int        `json:"data_start"` // 1-based line index of the first data line
	Cleaned      Matrix     `json:"-"`
	Channels     Matrix     `json:"-"`
	Labels       []string   `json:"labels"`
}

// ChannelCount returns the number of extracted EEG channels.
func (r *Recording) ChannelCount() int {
	return r.Channels.Cols()
}

// SampleCount returns the number of retained sample rows.
func (r *Recording) SampleCount() int {
	return r.Channels.Rows()
}
