package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/trentonstrong/spectrograph/pkg/dsp"
	"github.com/trentonstrong/spectrograph/pkg/dsp/signal"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose  bool   `mapstructure:"verbose"`
	LogLevel string `mapstructure:"log_level"`

	// Analysis configuration
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Initial signal set
	Signals []SignalConfig `mapstructure:"signals"`

	// Rendering configuration
	Render RenderConfig `mapstructure:"render"`
}

// AnalysisConfig contains the synthesis and spectral-analysis settings
type AnalysisConfig struct {
	BufferSize int           `mapstructure:"buffer_size"`
	SampleRate int           `mapstructure:"sample_rate"`
	Debounce   time.Duration `mapstructure:"debounce"`
	FloorDB    float64       `mapstructure:"floor_db"`
	NoiseSeed  int64         `mapstructure:"noise_seed"`
}

// SignalConfig describes one configured signal generator
type SignalConfig struct {
	Waveform  string  `mapstructure:"waveform"`
	Frequency float64 `mapstructure:"frequency"`
	Amplitude float64 `mapstructure:"amplitude"`
}

// RenderConfig contains terminal rendering settings
type RenderConfig struct {
	Bars   int  `mapstructure:"bars"`
	Height int  `mapstructure:"height"`
	Labels bool `mapstructure:"labels"`
}

// LoadConfig loads configuration from viper with defaults applied
func LoadConfig(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if err := config.AnalysisSettings().Validate(); err != nil {
		return fmt.Errorf("invalid analysis configuration: %w", err)
	}

	if config.Analysis.Debounce < 0 {
		return fmt.Errorf("analysis debounce cannot be negative")
	}

	if config.Analysis.FloorDB >= 0 {
		return fmt.Errorf("analysis floor must be negative decibels")
	}

	for i, sig := range config.Signals {
		if _, err := signal.ParseWaveform(sig.Waveform); err != nil {
			return fmt.Errorf("signal %d: %w", i, err)
		}
	}

	if config.Render.Bars <= 0 {
		return fmt.Errorf("render bars must be positive")
	}

	if config.Render.Height <= 0 {
		return fmt.Errorf("render height must be positive")
	}

	return nil
}

// AnalysisSettings returns the explicit analysis configuration value passed
// into the pipeline stages.
func (c *Config) AnalysisSettings() dsp.Config {
	return dsp.Config{
		BufferSize: c.Analysis.BufferSize,
		SampleRate: c.Analysis.SampleRate,
	}
}

// Descriptors converts the configured signal set into descriptors, keeping
// file order.
func (c *Config) Descriptors() ([]signal.Descriptor, error) {
	descs := make([]signal.Descriptor, 0, len(c.Signals))
	for i, sig := range c.Signals {
		kind, err := signal.ParseWaveform(sig.Waveform)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
		descs = append(descs, signal.Descriptor{
			Kind:      kind,
			Frequency: sig.Frequency,
			Amplitude: sig.Amplitude,
		})
	}
	return descs, nil
}
