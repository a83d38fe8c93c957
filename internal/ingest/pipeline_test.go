package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eegcli/pkg/contracts/domain"
)

func TestPipelineEndToEnd(t *testing.T) {
	lines := []string{
		"%OpenBCI Raw EEG Data",
		"%Number of channels = 5",
		"Index,Ch1,Ch2,Ch3,Ch4,Ch5",
	}
	for i := 0; i < 100; i++ {
		lines = append(lines, fmt.Sprintf("%d,%.2f,%.2f,%.2f,%.2f,%.2f",
			i, float64(i)*0.1, float64(i)*0.2, float64(i)*0.3, float64(i)*0.4, float64(i)*0.5))
	}

	p := NewPipeline(nil, DefaultPipelineConfig())
	rec, err := p.ParseLines(context.Background(), "session.txt", lines)
	require.NoError(t, err)

	assert.Equal(t, 4, rec.DataStart)
	assert.Equal(t, 100, rec.Cleaned.Rows())
	assert.Equal(t, 6, rec.Cleaned.Cols())
	// Six columns lands in the >=5 branch.
	assert.Equal(t, domain.DeviceGanglion, rec.Device)
	assert.Equal(t, 100, rec.SampleCount())
	assert.Equal(t, 4, rec.ChannelCount())
	assert.Equal(t, []string{"Ch1", "Ch2", "Ch3", "Ch4"}, rec.Labels)
}

func TestPipelineSynthesizedLabelPrefix(t *testing.T) {
	lines := []string{"0,1,2", "1,3,4"}

	p := NewPipeline(nil, DefaultPipelineConfig())
	rec, err := p.ParseLines(context.Background(), filepath.Join("some", "dir", "File1.txt"), lines)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.DataStart)
	assert.Empty(t, rec.HeaderTokens)
	assert.Equal(t, []string{"File1_Ch1", "File1_Ch2"}, rec.Labels)
}

func TestPipelineConfiguredLabelPrefix(t *testing.T) {
	p := NewPipeline(nil, PipelineConfig{LabelPrefix: "Probe"})
	rec, err := p.ParseLines(context.Background(), "whatever.csv", []string{"0,1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Probe_Ch1"}, rec.Labels)
}

func TestPipelineMetadataOnlyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banner.txt")
	require.NoError(t, os.WriteFile(path, []byte("%banner\n# nothing here\n"), 0o644))

	p := NewPipeline(nil, DefaultPipelineConfig())
	_, err := p.ParseFile(context.Background(), path)
	require.Error(t, err)
	assert.True(t, IsNoData(err))
	assert.Contains(t, err.Error(), path)
}

func TestPipelineMissingFile(t *testing.T) {
	p := NewPipeline(nil, DefaultPipelineConfig())
	_, err := p.ParseFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, IsFileOpen(err))
}

func TestPipelineFailureIsolation(t *testing.T) {
	// One bad file must not poison the next parse on the same pipeline.
	p := NewPipeline(nil, DefaultPipelineConfig())
	ctx := context.Background()

	_, err := p.ParseLines(ctx, "bad.txt", []string{"%only metadata"})
	require.Error(t, err)

	rec, err := p.ParseLines(ctx, "good.txt", []string{"0,1,2", "1,3,4"})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.SampleCount())
}

func TestPipelineDegenerateColumnsCleaned(t *testing.T) {
	// Trailing aux column never parses; it must vanish before device
	// classification sees the column count.
	lines := []string{
		"Index,Ch1,Ch2,Ch3,Ch4,Aux",
		"0,1,2,3,4,x",
		"1,5,6,7,8,x",
	}
	p := NewPipeline(nil, DefaultPipelineConfig())
	rec, err := p.ParseLines(context.Background(), "s.txt", lines)
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Cleaned.Cols())
	assert.Equal(t, domain.DeviceGanglion, rec.Device)
	assert.Equal(t, 4, rec.ChannelCount())
}
