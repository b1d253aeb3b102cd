package signal

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/trentonstrong/spectrograph/pkg/dsp"
)

// Mix sums one generated buffer per descriptor into a single composite
// buffer of exactly cfg.BufferSize samples. Amplitudes accumulate linearly
// with no scaling or clipping, so several full-amplitude signals can exceed
// the nominal [-1, 1] range; keeping or taming that headroom is a rendering
// concern, not a mixing one. The sum is commutative up to floating-point
// tolerance, so descriptor order does not meaningfully change the result.
//
// An empty descriptor slice is a precondition violation and returns
// ErrNoSignals rather than a silent zero buffer, so callers can tell "no
// signals configured" apart from "signals that sum to silence".
func Mix(gen Generator, descs []Descriptor, cfg dsp.Config) ([]float64, error) {
	if len(descs) == 0 {
		return nil, ErrNoSignals
	}

	acc, err := generateOne(gen, descs[0], cfg)
	if err != nil {
		return nil, err
	}

	for _, desc := range descs[1:] {
		buf, err := generateOne(gen, desc, cfg)
		if err != nil {
			return nil, err
		}
		floats.Add(acc, buf)
	}

	return acc, nil
}

func generateOne(gen Generator, desc Descriptor, cfg dsp.Config) ([]float64, error) {
	buf, err := gen.Generate(desc, cfg)
	if err != nil {
		return nil, NewSignalError(ErrCodeGeneration,
			fmt.Sprintf("generating %s", desc), err)
	}
	if len(buf) != cfg.BufferSize {
		return nil, NewSignalError(ErrCodeBufferLength,
			fmt.Sprintf("generator returned %d samples for %s, want %d",
				len(buf), desc, cfg.BufferSize), nil)
	}
	return buf, nil
}
