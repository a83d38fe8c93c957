package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"eegcli/pkg/contracts/domain"
)

// Config is the complete application configuration. Values come from
// struct defaults and EEG_* environment variables, with an optional yaml
// file layered on top.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Sampling SamplingConfig `yaml:"sampling" envconfig:"SAMPLING"`
	Influx   InfluxConfig   `yaml:"influx" envconfig:"INFLUX"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/eegcli.log"`
}

// PathsConfig holds filesystem locations.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports" validate:"required"`
}

// SamplingConfig carries the per-device sampling rates used to derive a
// time axis. The parsing core never reads these; only the analysis layer
// that computes sampleIndex/rate does.
type SamplingConfig struct {
	CytonHz    float64 `yaml:"cyton_hz" envconfig:"CYTON_HZ" default:"250" validate:"gt=0"`
	GanglionHz float64 `yaml:"ganglion_hz" envconfig:"GANGLION_HZ" default:"125" validate:"gt=0"`
	GenericHz  float64 `yaml:"generic_hz" envconfig:"GENERIC_HZ" default:"250" validate:"gt=0"`
}

// RateFor returns the configured sampling rate for a device kind.
func (s SamplingConfig) RateFor(kind domain.DeviceKind) float64 {
	switch kind {
	case domain.DeviceCyton:
		return s.CytonHz
	case domain.DeviceGanglion:
		return s.GanglionHz
	default:
		return s.GenericHz
	}
}

// InfluxConfig configures the optional InfluxDB sample sink. The sink is
// disabled unless a host is set.
type InfluxConfig struct {
	Host      string `yaml:"host" envconfig:"HOST"`
	AuthToken string `yaml:"auth_token" envconfig:"AUTH_TOKEN"`
	Org       string `yaml:"org" envconfig:"ORG"`
	Bucket    string `yaml:"bucket" envconfig:"BUCKET" default:"eeg"`
}

// Enabled reports whether a sink destination is configured.
func (i InfluxConfig) Enabled() bool {
	return i.Host != ""
}

// Load builds the configuration from defaults and EEG_* environment
// variables, layers the yaml file at path over it if the file exists,
// then validates the result. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	var cfg Config

	// envconfig applies struct defaults even when no variables are set.
	if err := envconfig.Process("EEG", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
