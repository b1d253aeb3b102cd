package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2048, cfg.BufferSize)
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"small power of two", Config{BufferSize: 256, SampleRate: 8000}, false},
		{"odd buffer", Config{BufferSize: 2047, SampleRate: 44100}, true},
		{"zero buffer", Config{BufferSize: 0, SampleRate: 44100}, true},
		{"negative buffer", Config{BufferSize: -2048, SampleRate: 44100}, true},
		{"zero sample rate", Config{BufferSize: 2048, SampleRate: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigDerivedValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 22050.0, cfg.Nyquist())
	assert.Equal(t, 1024, cfg.BandCount())
	// 2 * 22050 / 2048
	assert.InDelta(t, 21.5332, cfg.Bandwidth(), 1e-4)
}
