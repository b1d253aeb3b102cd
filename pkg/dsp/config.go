// Package dsp holds the shared analysis configuration for the synthesis and
// spectral-analysis pipeline. The configuration is an explicit value passed
// into every stage rather than process-wide state, so alternate buffer sizes
// and sample rates can coexist.
package dsp

import "fmt"

// Default analysis settings. One buffer of 2048 samples at 44.1 kHz gives a
// band resolution of about 21.5 Hz.
const (
	DefaultBufferSize = 2048
	DefaultSampleRate = 44100
)

// Config describes one analysis configuration: the length of the time-domain
// buffer fed into the transform and the sample rate the buffer represents.
type Config struct {
	BufferSize int
	SampleRate int
}

// DefaultConfig returns the standard 2048-sample, 44.1 kHz configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize: DefaultBufferSize,
		SampleRate: DefaultSampleRate,
	}
}

// Validate checks that the configuration can drive a real-input transform.
// The buffer must be non-empty and even so the non-redundant half of the
// spectrum has a whole number of bands.
func (c Config) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive: %d", c.BufferSize)
	}
	if c.BufferSize%2 != 0 {
		return fmt.Errorf("buffer size must be even: %d", c.BufferSize)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive: %d", c.SampleRate)
	}
	return nil
}

// Nyquist returns the highest representable frequency in Hz.
func (c Config) Nyquist() float64 {
	return float64(c.SampleRate) / 2
}

// Bandwidth returns the frequency span in Hz that each spectrum band
// represents: the full twice-Nyquist range divided across the buffer.
func (c Config) Bandwidth() float64 {
	return 2 * c.Nyquist() / float64(c.BufferSize)
}

// BandCount returns the number of non-redundant frequency bands a transform
// of one buffer produces.
func (c Config) BandCount() int {
	return c.BufferSize / 2
}
