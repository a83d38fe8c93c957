package exporter

import (
	"math"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"eegcli/internal/config"
	"eegcli/pkg/contracts/domain"
)

// InfluxWriter streams recording samples to InfluxDB, one point per sample
// row with a field per channel label.
type InfluxWriter struct {
	client influxdb2.Client
	api    api.WriteAPI
}

// NewInfluxWriter connects a writer to the configured InfluxDB instance.
func NewInfluxWriter(cfg config.InfluxConfig) *InfluxWriter {
	client := influxdb2.NewClient(cfg.Host, cfg.AuthToken)
	return &InfluxWriter{
		client: client,
		api:    client.WriteAPI(cfg.Org, cfg.Bucket),
	}
}

// WriteRecording writes every non-missing sample of the recording. Sample
// times are start plus the time-axis offset; timeAxis must cover the
// recording's sample count.
func (w *InfluxWriter) WriteRecording(rec *domain.Recording, timeAxis []float64, start time.Time) {
	for i := 0; i < rec.SampleCount(); i++ {
		if i >= len(timeAxis) {
			break
		}
		point := influxdb2.NewPointWithMeasurement("eeg").
			AddTag("source", rec.Source).
			AddTag("device", string(rec.Device)).
			SetTime(start.Add(time.Duration(timeAxis[i] * float64(time.Second))))

		fields := 0
		for j := 0; j < rec.ChannelCount(); j++ {
			v := rec.Channels[i][j]
			if math.IsNaN(v) {
				continue
			}
			point.AddField(rec.Labels[j], v)
			fields++
		}
		if fields > 0 {
			w.api.WritePoint(point)
		}
	}
	w.api.Flush()
}

// Close releases the underlying client.
func (w *InfluxWriter) Close() {
	w.client.Close()
}
