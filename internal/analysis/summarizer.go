package analysis

import (
	"context"
	"log/slog"
	"math"

	"eegcli/pkg/contracts/domain"
)

// ChannelSummary holds descriptive statistics for one extracted channel.
// Missing cells are excluded from the moments and reported separately.
type ChannelSummary struct {
	Label   string  `json:"label"`
	Samples int     `json:"samples"`
	Missing int     `json:"missing"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
}

// SummarizerConfig holds configuration options for the Summarizer.
type SummarizerConfig struct {
	// PrecisionDigits rounds reported statistics; <=0 leaves them raw.
	PrecisionDigits int
}

// DefaultSummarizerConfig returns the standard summarizer configuration.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{PrecisionDigits: 4}
}

// Summarizer computes per-channel statistics over a recording.
type Summarizer struct {
	logger *slog.Logger
	cfg    SummarizerConfig
}

// NewSummarizer creates a new channel summarizer.
func NewSummarizer(logger *slog.Logger, cfg SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger, cfg: cfg}
}

// Summarize returns one summary per channel of the recording, in channel
// order. An empty channel set yields an empty slice.
func (s *Summarizer) Summarize(ctx context.Context, rec *domain.Recording) []ChannelSummary {
	cols := rec.Channels.Cols()
	summaries := make([]ChannelSummary, 0, cols)

	for j := 0; j < cols; j++ {
		sum := ChannelSummary{Min: math.Inf(1), Max: math.Inf(-1)}
		if j < len(rec.Labels) {
			sum.Label = rec.Labels[j]
		}

		var total, count float64
		for i := range rec.Channels {
			v := rec.Channels[i][j]
			if math.IsNaN(v) {
				sum.Missing++
				continue
			}
			sum.Samples++
			total += v
			count++
			if v < sum.Min {
				sum.Min = v
			}
			if v > sum.Max {
				sum.Max = v
			}
		}

		if count == 0 {
			sum.Min, sum.Max = 0, 0
		} else {
			sum.Mean = total / count
			var sq float64
			for i := range rec.Channels {
				if v := rec.Channels[i][j]; !math.IsNaN(v) {
					d := v - sum.Mean
					sq += d * d
				}
			}
			sum.StdDev = math.Sqrt(sq / count)
		}

		sum.Min = s.round(sum.Min)
		sum.Max = s.round(sum.Max)
		sum.Mean = s.round(sum.Mean)
		sum.StdDev = s.round(sum.StdDev)
		summaries = append(summaries, sum)
	}

	s.logger.DebugContext(ctx, "summarized recording",
		slog.String("source", rec.Source),
		slog.Int("channels", len(summaries)))
	return summaries
}

func (s *Summarizer) round(v float64) float64 {
	if s.cfg.PrecisionDigits <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	scale := math.Pow(10, float64(s.cfg.PrecisionDigits))
	return math.Round(v*scale) / scale
}
