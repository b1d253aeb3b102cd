// Package spectrum turns composite time-domain buffers into conditioned,
// display-ready frequency spectra: forward transform, decibel conversion
// with peak normalization, and band-index to frequency mapping.
package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/trentonstrong/spectrograph/internal/logging"
	"github.com/trentonstrong/spectrograph/pkg/dsp"
)

// Transformer converts one time-domain buffer into magnitude-per-band
// values. Implementations must accept exactly cfg.BufferSize samples and
// return exactly cfg.BufferSize/2 non-negative magnitudes in increasing
// frequency order; an all-zero buffer yields all-zero magnitudes.
type Transformer interface {
	Transform(buffer []float64) ([]float64, error)
}

// FFTTransformer is the reference Transformer, computing magnitudes with a
// real-input FFT and keeping only the non-redundant half of the result.
type FFTTransformer struct {
	cfg    dsp.Config
	logger logging.Logger
}

// NewFFTTransformer creates a transformer for the given configuration.
func NewFFTTransformer(cfg dsp.Config, logger logging.Logger) *FFTTransformer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &FFTTransformer{
		cfg: cfg,
		logger: logger.WithFields(logging.Fields{
			"component":   "fft_transformer",
			"buffer_size": cfg.BufferSize,
			"sample_rate": cfg.SampleRate,
		}),
	}
}

// Transform computes per-band magnitudes for one buffer.
func (t *FFTTransformer) Transform(buffer []float64) ([]float64, error) {
	if len(buffer) != t.cfg.BufferSize {
		return nil, NewSpectrumError(ErrCodeTransformInput,
			fmt.Sprintf("buffer has %d samples, want %d", len(buffer), t.cfg.BufferSize), nil)
	}

	t.logger.Debug("computing forward transform")

	bins := fft.FFTReal(buffer)

	mags := make([]float64, t.cfg.BandCount())
	for i := range mags {
		mags[i] = cmplx.Abs(bins[i])
	}
	return mags, nil
}
