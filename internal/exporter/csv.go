package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"eegcli/pkg/contracts/domain"
)

// CSVWriter writes cleaned recordings out as CSV files.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteRecording writes the recording's EEG channels to filePath, one
// labelled column per channel. When timeAxis is non-nil a leading
// "Time(s)" column is included; its length must match the sample count.
// Missing cells are written as empty fields, never as zero.
func (w *CSVWriter) WriteRecording(filePath string, rec *domain.Recording, timeAxis []float64) error {
	if timeAxis != nil && len(timeAxis) != rec.SampleCount() {
		return fmt.Errorf("time axis length %d does not match %d samples", len(timeAxis), rec.SampleCount())
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)

	header := make([]string, 0, rec.ChannelCount()+1)
	if timeAxis != nil {
		header = append(header, "Time(s)")
	}
	header = append(header, rec.Labels...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := 0; i < rec.SampleCount(); i++ {
		row := make([]string, 0, len(header))
		if timeAxis != nil {
			row = append(row, formatCell(timeAxis[i]))
		}
		for j := 0; j < rec.ChannelCount(); j++ {
			row = append(row, formatCell(rec.Channels[i][j]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	w.logger.Info("wrote recording CSV",
		slog.String("file_path", filePath),
		slog.Int("rows", rec.SampleCount()),
		slog.Int("channels", rec.ChannelCount()))
	return nil
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
