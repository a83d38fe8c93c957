package ingest

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericShape(t *testing.T) {
	lines := []string{"%banner", "Index,Ch1,Ch2"}
	for i := 0; i < 50; i++ {
		lines = append(lines, fmt.Sprintf("%d,%f,%f", i, float64(i)*1.5, float64(i)*2.5))
	}

	m, err := ParseNumeric(lines, 3)
	require.NoError(t, err)
	assert.Equal(t, 50, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0.0, m[0][0])
	assert.Equal(t, 73.5, m[49][1])
}

func TestParseNumericTolerance(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		check func(t *testing.T, m [][]float64)
	}{
		{
			name:  "short row padded with NaN",
			lines: []string{"0,1,2,3", "1,4"},
			check: func(t *testing.T, m [][]float64) {
				assert.Len(t, m[1], 4)
				assert.True(t, math.IsNaN(m[1][2]))
				assert.True(t, math.IsNaN(m[1][3]))
			},
		},
		{
			name:  "long row cut to first row width",
			lines: []string{"0,1", "1,2,3,4"},
			check: func(t *testing.T, m [][]float64) {
				assert.Len(t, m[1], 2)
				assert.Equal(t, 2.0, m[1][1])
			},
		},
		{
			name:  "unparsable cell becomes NaN not zero",
			lines: []string{"0,1,2", "1,oops,3"},
			check: func(t *testing.T, m [][]float64) {
				assert.True(t, math.IsNaN(m[1][1]))
				assert.Equal(t, 3.0, m[1][2])
			},
		},
		{
			name:  "empty cell becomes NaN",
			lines: []string{"0,1,2", "1,,3"},
			check: func(t *testing.T, m [][]float64) {
				assert.True(t, math.IsNaN(m[1][1]))
			},
		},
		{
			name:  "tab delimited rows",
			lines: []string{"0\t1.5\t2.5", "1\t3.5\t4.5"},
			check: func(t *testing.T, m [][]float64) {
				assert.Equal(t, 1.5, m[0][1])
				assert.Equal(t, 4.5, m[1][2])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseNumeric(tt.lines, 1)
			require.NoError(t, err)
			require.Equal(t, len(tt.lines), m.Rows())
			tt.check(t, m)
		})
	}
}

func TestParseNumericMalformed(t *testing.T) {
	_, err := ParseNumeric([]string{"0,1"}, 5)
	require.Error(t, err)
	assert.True(t, IsMalformedData(err))

	_, err = ParseNumeric([]string{"0,1"}, 0)
	require.Error(t, err)
	assert.True(t, IsMalformedData(err))
}
