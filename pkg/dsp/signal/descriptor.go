// Package signal defines the signal generator descriptors, the mutable
// descriptor collection, and the mixer that sums generator outputs into one
// composite buffer.
package signal

import (
	"fmt"
	"strconv"
	"strings"
)

// WaveformKind identifies a generator waveform.
type WaveformKind int

const (
	WaveformSine WaveformKind = iota
	WaveformTriangle
	WaveformSaw
	WaveformSquare
	WaveformNoise
)

var waveformNames = map[WaveformKind]string{
	WaveformSine:     "sine",
	WaveformTriangle: "triangle",
	WaveformSaw:      "saw",
	WaveformSquare:   "square",
	WaveformNoise:    "noise",
}

func (k WaveformKind) String() string {
	if name, ok := waveformNames[k]; ok {
		return name
	}
	return fmt.Sprintf("waveform(%d)", int(k))
}

// ParseWaveform parses a waveform name as used in config files and CLI specs.
func ParseWaveform(s string) (WaveformKind, error) {
	for kind, name := range waveformNames {
		if strings.EqualFold(s, name) {
			return kind, nil
		}
	}
	return WaveformSine, fmt.Errorf("unknown waveform: %q", s)
}

// Descriptor holds the parameters of one signal generator. Frequency is in
// Hz and is meaningful up to the Nyquist limit; amplitude is a unitless
// multiplier, nominally non-negative. Neither range is enforced here:
// out-of-range values flow through and produce aliased or degenerate output,
// and rejecting them is the editing layer's call.
type Descriptor struct {
	Kind      WaveformKind
	Frequency float64
	Amplitude float64
}

// DefaultDescriptor returns a full-amplitude 440 Hz sine.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Kind:      WaveformSine,
		Frequency: 440,
		Amplitude: 1.0,
	}
}

// ParseSpec parses a "kind:frequency:amplitude" descriptor spec, e.g.
// "sine:440:1.0". Frequency and amplitude may be omitted and default to the
// DefaultDescriptor values.
func ParseSpec(spec string) (Descriptor, error) {
	desc := DefaultDescriptor()

	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return desc, fmt.Errorf("invalid signal spec %q: expected kind[:frequency[:amplitude]]", spec)
	}

	kind, err := ParseWaveform(parts[0])
	if err != nil {
		return desc, fmt.Errorf("invalid signal spec %q: %w", spec, err)
	}
	desc.Kind = kind

	if len(parts) > 1 {
		freq, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return desc, fmt.Errorf("invalid frequency in signal spec %q: %w", spec, err)
		}
		desc.Frequency = freq
	}

	if len(parts) > 2 {
		amp, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return desc, fmt.Errorf("invalid amplitude in signal spec %q: %w", spec, err)
		}
		desc.Amplitude = amp
	}

	return desc, nil
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s:%g:%g", d.Kind, d.Frequency, d.Amplitude)
}
