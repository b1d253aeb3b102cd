package signal

import (
	"math"
	"math/rand"

	"github.com/trentonstrong/spectrograph/pkg/dsp"
)

// Generator produces one buffer of time-domain samples for a descriptor.
// Implementations must be deterministic for all waveform kinds except Noise,
// which may be stochastic per call, and must return exactly cfg.BufferSize
// samples.
type Generator interface {
	Generate(desc Descriptor, cfg dsp.Config) ([]float64, error)
}

// Oscillator is the reference Generator: closed-form periodic waveforms plus
// seeded white noise.
type Oscillator struct {
	seed int64
}

// OscillatorOption configures an Oscillator.
type OscillatorOption func(*Oscillator)

// WithSeed sets the random seed for noise generation. Using a fixed seed
// makes noise reproducible across calls.
func WithSeed(seed int64) OscillatorOption {
	return func(o *Oscillator) {
		o.seed = seed
	}
}

// NewOscillator creates a configured oscillator.
func NewOscillator(opts ...OscillatorOption) *Oscillator {
	o := &Oscillator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Generate renders one buffer for the descriptor. Frequencies above the
// Nyquist limit are not rejected; they alias, as they would on real sampled
// hardware.
func (o *Oscillator) Generate(desc Descriptor, cfg dsp.Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewSignalError(ErrCodeGeneration, "invalid analysis configuration", err)
	}

	out := make([]float64, cfg.BufferSize)

	if desc.Kind == WaveformNoise {
		rng := rand.New(rand.NewSource(o.seed))
		for i := range out {
			out[i] = (rng.Float64()*2 - 1) * desc.Amplitude
		}
		return out, nil
	}

	step := desc.Frequency / float64(cfg.SampleRate)
	for i := range out {
		phase := math.Mod(step*float64(i), 1)
		out[i] = desc.Amplitude * sampleWaveform(desc.Kind, phase)
	}
	return out, nil
}

// sampleWaveform evaluates one unit-amplitude waveform at a phase in [0, 1).
// The ramp waveforms are phase-aligned with the sine's upward zero crossing.
func sampleWaveform(kind WaveformKind, phase float64) float64 {
	switch kind {
	case WaveformTriangle:
		// quarter-cycle offset so the ramp starts at zero, rising
		p := math.Mod(phase+0.25, 1)
		return 1 - 4*math.Abs(p-0.5)
	case WaveformSaw:
		p := math.Mod(phase+0.5, 1)
		return 2*p - 1
	case WaveformSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
