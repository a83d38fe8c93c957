package ingest

import (
	"math"
	"strconv"
	"strings"

	"eegcli/pkg/contracts/domain"
)

// ParseNumeric converts the data block starting at dataStart (1-based) into
// a rectangular matrix. Width is taken from the first retained line. Rows
// are parsed with a strict tokenizer first; rows it rejects fall back to a
// tolerant tokenizer that maps unparsable or absent cells to NaN, so a few
// ragged rows never reject the whole file.
func ParseNumeric(lines []string, dataStart int) (domain.Matrix, error) {
	if dataStart < 1 || dataStart > len(lines) {
		return nil, NewMalformedDataError("", "data start beyond end of input")
	}
	data := lines[dataStart-1:]

	width := len(splitCells(data[0]))
	if width == 0 {
		return nil, NewMalformedDataError("", "first data line produced no columns")
	}

	matrix := make(domain.Matrix, 0, len(data))
	for _, line := range data {
		cells := splitCells(line)
		row, ok := parseRowStrict(cells, width)
		if !ok {
			row = parseRowTolerant(cells, width)
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}

// parseRowStrict converts a well-formed row: exact width, every cell numeric.
func parseRowStrict(cells []string, width int) ([]float64, bool) {
	if len(cells) != width {
		return nil, false
	}
	row := make([]float64, width)
	for i, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		row[i] = v
	}
	return row, true
}

// parseRowTolerant converts any row to the fixed width: unparsable cells
// become NaN, short rows are padded with NaN, long rows are cut at width.
func parseRowTolerant(cells []string, width int) []float64 {
	row := make([]float64, width)
	for i := range row {
		row[i] = math.NaN()
	}
	for i, cell := range cells {
		if i >= width {
			break
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			row[i] = v
		}
	}
	return row
}
