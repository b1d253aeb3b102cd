package signal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/trentonstrong/spectrograph/pkg/dsp"
)

// stubGenerator returns a fixed buffer regardless of descriptor, optionally
// with the wrong length.
type stubGenerator struct {
	buf []float64
	err error
}

func (s *stubGenerator) Generate(desc Descriptor, cfg dsp.Config) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(s.buf))
	copy(out, s.buf)
	return out, nil
}

func TestMixEmptyCollection(t *testing.T) {
	_, err := Mix(NewOscillator(), nil, testConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSignals))
}

func TestMixBufferLengthInvariant(t *testing.T) {
	osc := NewOscillator()
	cfg := testConfig()

	descs := []Descriptor{
		{Kind: WaveformSine, Frequency: 440, Amplitude: 1},
	}
	for i := 0; i < 4; i++ {
		buf, err := Mix(osc, descs, cfg)
		require.NoError(t, err)
		assert.Len(t, buf, cfg.BufferSize, "with %d descriptors", len(descs))
		descs = append(descs, Descriptor{Kind: WaveformSaw, Frequency: float64(100 * (i + 1)), Amplitude: 0.5})
	}
}

func TestMixSingleDescriptorPassThrough(t *testing.T) {
	osc := NewOscillator()
	cfg := testConfig()
	desc := Descriptor{Kind: WaveformSine, Frequency: 400, Amplitude: 1.0}

	mixed, err := Mix(osc, []Descriptor{desc}, cfg)
	require.NoError(t, err)

	raw, err := osc.Generate(desc, cfg)
	require.NoError(t, err)

	assert.Equal(t, raw, mixed, "mixing a single signal must be a pass-through")
}

func TestMixOrderIndependence(t *testing.T) {
	osc := NewOscillator()
	cfg := testConfig()

	a := Descriptor{Kind: WaveformSine, Frequency: 440, Amplitude: 1}
	b := Descriptor{Kind: WaveformSquare, Frequency: 220, Amplitude: 0.7}
	d := Descriptor{Kind: WaveformTriangle, Frequency: 330, Amplitude: 0.3}

	abc, err := Mix(osc, []Descriptor{a, b, d}, cfg)
	require.NoError(t, err)
	cab, err := Mix(osc, []Descriptor{d, a, b}, cfg)
	require.NoError(t, err)

	assert.True(t, floats.EqualApprox(abc, cab, 1e-9),
		"summation must be order independent within tolerance")
}

func TestMixAmplitudesAccumulate(t *testing.T) {
	osc := NewOscillator()
	cfg := testConfig()
	desc := Descriptor{Kind: WaveformSquare, Frequency: 100, Amplitude: 1}

	// three full-amplitude copies exceed the nominal [-1, 1] range; no
	// scaling or clipping is applied at this layer
	mixed, err := Mix(osc, []Descriptor{desc, desc, desc}, cfg)
	require.NoError(t, err)

	peak := floats.Max(mixed)
	assert.InDelta(t, 3.0, peak, 1e-12)
}

func TestMixOppositePhaseCancellation(t *testing.T) {
	osc := NewOscillator()
	cfg := testConfig()

	up := Descriptor{Kind: WaveformSine, Frequency: 440, Amplitude: 1}
	down := Descriptor{Kind: WaveformSine, Frequency: 440, Amplitude: -1}

	mixed, err := Mix(osc, []Descriptor{up, down}, cfg)
	require.NoError(t, err)

	for i, v := range mixed {
		assert.InDelta(t, 0, v, 1e-12, "sample %d", i)
	}
}

func TestMixGeneratorLengthMismatch(t *testing.T) {
	cfg := testConfig()
	gen := &stubGenerator{buf: make([]float64, cfg.BufferSize/2)}

	_, err := Mix(gen, []Descriptor{DefaultDescriptor()}, cfg)
	require.Error(t, err)

	var sigErr *SignalError
	require.True(t, errors.As(err, &sigErr))
	assert.Equal(t, ErrCodeBufferLength, sigErr.Code)
}

func TestMixGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}

	_, err := Mix(gen, []Descriptor{DefaultDescriptor()}, testConfig())
	require.Error(t, err)

	var sigErr *SignalError
	require.True(t, errors.As(err, &sigErr))
	assert.Equal(t, ErrCodeGeneration, sigErr.Code)
}
