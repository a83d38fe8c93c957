package ingest

import "eegcli/pkg/contracts/domain"

// Clean strips degenerate rows and columns from a parsed matrix. The column
// pass runs first: a row must not survive merely because a globally absent
// column made it look complete. The result may be empty, which is valid
// output rather than an error, and Clean is idempotent.
func Clean(m domain.Matrix) domain.Matrix {
	if m.IsEmpty() {
		return domain.Matrix{}
	}

	keepCols := make([]int, 0, m.Cols())
	for j := 0; j < m.Cols(); j++ {
		if !m.ColumnAllMissing(j) {
			keepCols = append(keepCols, j)
		}
	}
	if len(keepCols) == 0 {
		return domain.Matrix{}
	}

	narrowed := make(domain.Matrix, 0, m.Rows())
	for i := range m {
		row := make([]float64, len(keepCols))
		for k, j := range keepCols {
			row[k] = m[i][j]
		}
		narrowed = append(narrowed, row)
	}

	cleaned := make(domain.Matrix, 0, narrowed.Rows())
	for i := range narrowed {
		if !narrowed.RowAllMissing(i) {
			cleaned = append(cleaned, narrowed[i])
		}
	}
	if len(cleaned) == 0 {
		return domain.Matrix{}
	}
	return cleaned
}
