package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentonstrong/spectrograph/internal/logging"
	"github.com/trentonstrong/spectrograph/pkg/dsp"
)

func newTestTransformer(cfg dsp.Config) *FFTTransformer {
	return NewFFTTransformer(cfg, logging.NewNopLogger())
}

func sineBuffer(freq float64, cfg dsp.Config) []float64 {
	buf := make([]float64, cfg.BufferSize)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(cfg.SampleRate))
	}
	return buf
}

func TestTransformOutputLength(t *testing.T) {
	cfg := dsp.DefaultConfig()
	transformer := newTestTransformer(cfg)

	mags, err := transformer.Transform(sineBuffer(440, cfg))
	require.NoError(t, err)
	assert.Len(t, mags, cfg.BufferSize/2)
}

func TestTransformRejectsWrongLength(t *testing.T) {
	transformer := newTestTransformer(dsp.DefaultConfig())

	for _, n := range []int{0, 1024, 4096} {
		_, err := transformer.Transform(make([]float64, n))
		require.Error(t, err, "length %d", n)

		var specErr *SpectrumError
		require.True(t, errors.As(err, &specErr))
		assert.Equal(t, ErrCodeTransformInput, specErr.Code)
	}
}

func TestTransformSilentBuffer(t *testing.T) {
	cfg := dsp.DefaultConfig()
	transformer := newTestTransformer(cfg)

	mags, err := transformer.Transform(make([]float64, cfg.BufferSize))
	require.NoError(t, err)

	for i, m := range mags {
		assert.Zero(t, m, "band %d of a silent buffer", i)
	}
}

// A 440 Hz sine at 44.1 kHz with a 2048-sample buffer lands in band
// 440 / (44100/2048) ≈ 20. The peak magnitude must sit there, give or take
// one band of spectral leakage from the non-integer cycle count.
func TestTransformKnownSinePeakBand(t *testing.T) {
	cfg := dsp.DefaultConfig()
	transformer := newTestTransformer(cfg)

	mags, err := transformer.Transform(sineBuffer(440, cfg))
	require.NoError(t, err)

	peakBand := 0
	for i, m := range mags {
		if m > mags[peakBand] {
			peakBand = i
		}
	}

	expected := int(440 / cfg.Bandwidth())
	assert.InDelta(t, expected, peakBand, 1,
		"peak band %d should be near %d", peakBand, expected)
}

func TestTransformMagnitudesNonNegative(t *testing.T) {
	cfg := dsp.DefaultConfig()
	transformer := newTestTransformer(cfg)

	buf := sineBuffer(997, cfg)
	for i := range buf {
		buf[i] += 0.25 * math.Sin(2*math.Pi*5000*float64(i)/float64(cfg.SampleRate))
	}

	mags, err := transformer.Transform(buf)
	require.NoError(t, err)
	for i, m := range mags {
		assert.GreaterOrEqual(t, m, 0.0, "band %d", i)
	}
}
