package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"eegcli/internal/analysis"
	"eegcli/internal/config"
	"eegcli/internal/exporter"
	"eegcli/internal/files"
	"eegcli/internal/infrastructure"
	"eegcli/internal/ingest"
	"eegcli/pkg/contracts"
	"eegcli/pkg/contracts/domain"
)

func main() {
	inDir := flag.String("in", "", "directory to scan for board exports (in addition to file arguments)")
	outDir := flag.String("out", "", "output directory for cleaned CSVs (defaults to configured reports dir)")
	configFile := flag.String("config", "eegcli.yaml", "config file")
	influxOut := flag.Bool("influx", false, "also write samples to the configured InfluxDB bucket")
	versionFlag := flag.Bool("v", false, "show version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(contracts.VersionInfo())
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *outDir == "" {
		*outDir = cfg.Paths.ReportsDir
	}

	targets := flag.Args()
	if *inDir != "" {
		discovery := files.NewDiscovery(cfg.Paths.DataDir)
		found, err := discovery.FindExports(*inDir)
		if err != nil {
			logger.Error("Export discovery failed", slog.String("dir", *inDir), slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, f := range found {
			targets = append(targets, f.Path)
		}
	}
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "usage: eeginspect [flags] <export-file> [<export-file> ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	sessionID := uuid.New().String()
	logger = logger.With(slog.String("session_id", sessionID))
	logger.Info("Starting board export inspection",
		slog.Int("files", len(targets)),
		slog.String("output_dir", *outDir))

	ctx := context.Background()
	pipeline := ingest.NewPipeline(logger, ingest.DefaultPipelineConfig())

	// Files are independent; parse them concurrently. A failed file is
	// reported and skipped, never aborting the rest of the batch.
	recordings := make([]*domain.Recording, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range targets {
		i, path := i, path
		g.Go(func() error {
			rec, err := pipeline.ParseFile(gctx, path)
			if err != nil {
				logger.Error("Failed to parse export",
					slog.String("file", path),
					slog.String("error", err.Error()))
				return nil
			}
			recordings[i] = rec
			return nil
		})
	}
	_ = g.Wait()

	var influxWriter *exporter.InfluxWriter
	if *influxOut {
		if !cfg.Influx.Enabled() {
			logger.Error("InfluxDB output requested but no host configured")
			os.Exit(1)
		}
		influxWriter = exporter.NewInfluxWriter(cfg.Influx)
		defer influxWriter.Close()
	}

	csvWriter := exporter.NewCSVWriter(logger)
	summarizer := analysis.NewSummarizer(logger, analysis.DefaultSummarizerConfig())

	parsed := 0
	for _, rec := range recordings {
		if rec == nil {
			continue
		}
		parsed++
		axis := analysis.TimeAxis(rec.SampleCount(), cfg.Sampling.RateFor(rec.Device))
		printRecording(rec, summarizer.Summarize(ctx, rec))

		outPath := filepath.Join(*outDir, cleanedName(rec.Source))
		if err := csvWriter.WriteRecording(outPath, rec, axis); err != nil {
			logger.Error("CSV export failed",
				slog.String("file", rec.Source),
				slog.String("error", err.Error()))
		}
		if influxWriter != nil {
			influxWriter.WriteRecording(rec, axis, time.Now().Add(-time.Duration(float64(time.Second)*lastOffset(axis))))
		}
	}

	fmt.Printf("\nParsed %d of %d files.\n", parsed, len(targets))
	if parsed < len(targets) {
		os.Exit(1)
	}
}

func printRecording(rec *domain.Recording, summaries []analysis.ChannelSummary) {
	fmt.Printf("\n%s\n", rec.Source)
	fmt.Printf("  device: %s, data starts at line %d\n", rec.Device, rec.DataStart)
	fmt.Printf("  %s samples x %d channels\n",
		humanize.Comma(int64(rec.SampleCount())), rec.ChannelCount())
	fmt.Printf("  labels: %s\n", strings.Join(rec.Labels, ", "))
	for _, s := range summaries {
		fmt.Printf("    %-12s min=%g max=%g mean=%g stddev=%g missing=%d\n",
			s.Label, s.Min, s.Max, s.Mean, s.StdDev, s.Missing)
	}
}

func cleanedName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_cleaned.csv"
}

func lastOffset(axis []float64) float64 {
	if len(axis) == 0 {
		return 0
	}
	return axis[len(axis)-1]
}
