package ingest

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"eegcli/pkg/contracts/domain"
)

// PipelineConfig holds configuration options for the ingestion pipeline.
type PipelineConfig struct {
	// LabelPrefix is used for synthesized channel labels when the export
	// carries no usable header. Empty means derive it from the file name.
	LabelPrefix string
}

// DefaultPipelineConfig returns the standard pipeline configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{}
}

// Pipeline runs the full ingestion sequence for one export at a time:
// header detection, numeric parsing, cleaning, channel extraction and
// label generation. It holds no per-file state, so a single instance can
// serve any number of files, concurrently if the caller wishes.
type Pipeline struct {
	logger *slog.Logger
	cfg    PipelineConfig
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(logger *slog.Logger, cfg PipelineConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, cfg: cfg}
}

// ParseFile reads and ingests a single board export file. The returned
// error is always a *ParseError; a failure here says nothing about any
// other file in the caller's batch.
func (p *Pipeline) ParseFile(ctx context.Context, path string) (*domain.Recording, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return p.ParseLines(ctx, path, lines)
}

// ParseLines ingests raw lines that were already read from source.
func (p *Pipeline) ParseLines(ctx context.Context, source string, lines []string) (*domain.Recording, error) {
	result, err := DetectHeader(lines)
	if err != nil {
		return nil, withSource(err, source)
	}

	p.logger.DebugContext(ctx, "located data block",
		slog.String("source", source),
		slog.Int("data_start", result.DataStart),
		slog.Int("header_tokens", len(result.HeaderTokens)))

	raw, err := ParseNumeric(lines, result.DataStart)
	if err != nil {
		return nil, withSource(err, source)
	}

	cleaned := Clean(raw)
	channels, device := ExtractChannels(cleaned)
	labels := GenerateLabels(result.HeaderTokens, channels.Cols(), p.labelPrefix(source))

	p.logger.InfoContext(ctx, "parsed board export",
		slog.String("source", source),
		slog.String("device", string(device)),
		slog.Int("raw_rows", raw.Rows()),
		slog.Int("raw_cols", raw.Cols()),
		slog.Int("rows", cleaned.Rows()),
		slog.Int("cols", cleaned.Cols()),
		slog.Int("channels", channels.Cols()))

	return &domain.Recording{
		Source:       source,
		Device:       device,
		HeaderTokens: result.HeaderTokens,
		DataStart:    result.DataStart,
		Cleaned:      cleaned,
		Channels:     channels,
		Labels:       labels,
	}, nil
}

func (p *Pipeline) labelPrefix(source string) string {
	if p.cfg.LabelPrefix != "" {
		return p.cfg.LabelPrefix
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func withSource(err error, source string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Source == "" {
		pe.Source = source
	}
	return err
}
