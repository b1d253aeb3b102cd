package spectrum

import (
	"fmt"

	"github.com/trentonstrong/spectrograph/pkg/dsp"
)

// Bands maps band indices to the center frequencies they represent. Pure and
// stateless beyond the configuration; the same mapping must be used for both
// analysis and axis labeling so the two stay consistent.
type Bands struct {
	cfg dsp.Config
}

// NewBands creates a band mapper for the given configuration.
func NewBands(cfg dsp.Config) Bands {
	return Bands{cfg: cfg}
}

// Count returns the number of bands, one per non-redundant transform bin.
func (b Bands) Count() int {
	return b.cfg.BandCount()
}

// Bandwidth returns the Hz span of each band.
func (b Bands) Bandwidth() float64 {
	return b.cfg.Bandwidth()
}

// Frequency returns the center frequency of the band at index. Band centers,
// not edges: band 0 spans [0, bandwidth) and is reported at bandwidth/2.
func (b Bands) Frequency(index int) (float64, error) {
	if index < 0 || index >= b.Count() {
		return 0, NewSpectrumError(ErrCodeBandIndex,
			fmt.Sprintf("band index %d out of range [0, %d)", index, b.Count()), nil)
	}
	bw := b.Bandwidth()
	return bw*float64(index) + bw/2, nil
}
