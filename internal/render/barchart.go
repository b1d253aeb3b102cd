// Package render draws conditioned spectra as terminal bar charts. It is the
// reference rendering collaborator; the pipeline itself makes no assumption
// about how updates are drawn.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/trentonstrong/spectrograph/pkg/dsp/pipeline"
	"github.com/trentonstrong/spectrograph/pkg/dsp/spectrum"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

const noSignal = "(no signal)"

// BarChart folds the per-band decibel spectrum into a fixed number of bars
// and renders them as a block-character chart, loudest band at 0 dB hitting
// the top row and the floor sitting on the axis.
type BarChart struct {
	bars    int
	height  int
	floorDB float64
	labels  bool
}

// NewBarChart creates a renderer with the given bar count, row height and
// decibel floor. floorDB must be negative; values at or below it render as
// empty bars.
func NewBarChart(bars, height int, floorDB float64, labels bool) *BarChart {
	if bars < 1 {
		bars = 1
	}
	if height < 1 {
		height = 1
	}
	return &BarChart{
		bars:    bars,
		height:  height,
		floorDB: floorDB,
		labels:  labels,
	}
}

// Render draws one pipeline update. NoData updates render a placeholder line
// instead of an empty chart, so "nothing configured" and "silence" are
// visibly distinct from a quiet spectrum.
func (b *BarChart) Render(u pipeline.Update, bands spectrum.Bands) string {
	if u.NoData || len(u.Spectrum) == 0 {
		return noSignal
	}

	levels := b.barLevels(u.Spectrum)

	var sb strings.Builder
	for row := b.height - 1; row >= 0; row-- {
		for _, level := range levels {
			sb.WriteRune(barRune(level, row))
		}
		sb.WriteByte('\n')
	}

	if b.labels {
		sb.WriteString(b.labelRow(bands, len(u.Spectrum)))
	}
	return sb.String()
}

// barLevels folds spectrum bands into b.bars groups, keeping each group's
// loudest band, and scales [floorDB, 0] onto [0, height].
func (b *BarChart) barLevels(db []float64) []float64 {
	bars := b.bars
	if bars > len(db) {
		bars = len(db)
	}

	levels := make([]float64, bars)
	perBar := float64(len(db)) / float64(bars)
	for i := range levels {
		lo := int(float64(i) * perBar)
		hi := int(float64(i+1) * perBar)
		if hi <= lo {
			hi = lo + 1
		}

		peak := math.Inf(-1)
		for _, v := range db[lo:hi] {
			if v > peak {
				peak = v
			}
		}

		if peak <= b.floorDB || math.IsInf(peak, -1) {
			continue
		}
		levels[i] = (peak - b.floorDB) / -b.floorDB * float64(b.height)
	}
	return levels
}

func barRune(level float64, row int) rune {
	bottom := float64(row)
	switch {
	case level >= bottom+1:
		return barChars[len(barChars)-1]
	case level > bottom:
		return barChars[int((level-bottom)*float64(len(barChars)-1))]
	default:
		return barChars[0]
	}
}

// labelRow prints the frequency at the left, center and right edges of the
// chart, using the same band mapper the spectrum was computed with.
func (b *BarChart) labelRow(bands spectrum.Bands, bandCount int) string {
	width := b.bars
	if width > bandCount {
		width = bandCount
	}

	lo, err := bands.Frequency(0)
	if err != nil {
		return ""
	}
	mid, _ := bands.Frequency(bandCount / 2)
	hi, _ := bands.Frequency(bandCount - 1)

	left := formatHz(lo)
	center := formatHz(mid)
	right := formatHz(hi)

	pad := width - len(left) - len(center) - len(right)
	if pad < 2 {
		return left + " .. " + right
	}
	leftPad := pad / 2
	return left + strings.Repeat(" ", leftPad) + center +
		strings.Repeat(" ", pad-leftPad) + right
}

func formatHz(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.1fkHz", hz/1000)
	}
	return fmt.Sprintf("%.0fHz", hz)
}
