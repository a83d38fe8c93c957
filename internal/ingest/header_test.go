package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectHeader(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		wantStart  int
		wantTokens []string
		wantErr    func(error) bool
	}{
		{
			name:    "empty input",
			lines:   nil,
			wantErr: IsEmptyFile,
		},
		{
			name:    "metadata only",
			lines:   []string{"%banner", "# comment", "Sample Index,Ch1", ""},
			wantErr: IsNoData,
		},
		{
			name:       "data on first line has no header",
			lines:      []string{"0,1,2", "1,2,3"},
			wantStart:  1,
			wantTokens: nil,
		},
		{
			name:       "comments then header then data",
			lines:      []string{"%OpenBCI Raw EEG Data", "%Number of channels = 4", "Index,Ch1,Ch2,Ch3", "0,1.0,2.0,3.0"},
			wantStart:  4,
			wantTokens: []string{"Index", "Ch1", "Ch2", "Ch3"},
		},
		{
			name:       "tab delimited header",
			lines:      []string{"Index\tCh1\tCh2", "0\t1\t2"},
			wantStart:  2,
			wantTokens: []string{"Index", "Ch1", "Ch2"},
		},
		{
			name:       "header tokens trimmed and empties dropped",
			lines:      []string{"Index, Ch1 ,, Ch2,", "0,1,2,3,4"},
			wantStart:  2,
			wantTokens: []string{"Index", "Ch1", "Ch2"},
		},
		{
			// Only the directly adjacent line counts as header. A blank
			// separator line yields no tokens even if a column-name row
			// sits above it.
			name:       "blank line between header and data drops header",
			lines:      []string{"Index,Ch1,Ch2", "", "0,1,2"},
			wantStart:  3,
			wantTokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DetectHeader(tt.lines)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, result.DataStart)
			assert.Equal(t, tt.wantTokens, result.HeaderTokens)
		})
	}
}
