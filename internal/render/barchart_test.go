package render

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentonstrong/spectrograph/pkg/dsp"
	"github.com/trentonstrong/spectrograph/pkg/dsp/pipeline"
	"github.com/trentonstrong/spectrograph/pkg/dsp/spectrum"
)

func testBands() spectrum.Bands {
	return spectrum.NewBands(dsp.DefaultConfig())
}

func flatSpectrum(n int, db float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = db
	}
	return out
}

func TestRenderNoData(t *testing.T) {
	chart := NewBarChart(32, 8, -96, true)

	out := chart.Render(pipeline.Update{NoData: true}, testBands())
	assert.Equal(t, noSignal, out)

	out = chart.Render(pipeline.Update{}, testBands())
	assert.Equal(t, noSignal, out)
}

func TestRenderDimensions(t *testing.T) {
	chart := NewBarChart(32, 8, -96, false)
	db := flatSpectrum(1024, -12)
	db[100] = 0

	out := chart.Render(pipeline.Update{Spectrum: db}, testBands())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 8)
	for i, line := range lines {
		assert.Equal(t, 32, len([]rune(line)), "row %d width", i)
	}
}

func TestRenderPeakReachesTop(t *testing.T) {
	chart := NewBarChart(16, 4, -96, false)
	db := flatSpectrum(1024, -96)
	db[0] = 0 // peak band at 0 dB in the first bar

	out := chart.Render(pipeline.Update{Spectrum: db}, testBands())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	top := []rune(lines[0])
	assert.Equal(t, '█', top[0], "0 dB peak must fill the top row")
}

func TestRenderFloorIsEmpty(t *testing.T) {
	chart := NewBarChart(16, 4, -96, false)
	db := flatSpectrum(1024, -96)
	db[0] = 0
	for i := 512; i < 1024; i++ {
		db[i] = math.Inf(-1) // silent bands render empty
	}

	out := chart.Render(pipeline.Update{Spectrum: db}, testBands())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	bottom := []rune(lines[len(lines)-1])
	for i := 8; i < 16; i++ {
		assert.Equal(t, ' ', bottom[i], "silent bar %d should be empty", i)
	}
}

func TestRenderLabelsUseBandMapper(t *testing.T) {
	chart := NewBarChart(64, 4, -96, true)
	db := flatSpectrum(1024, -12)
	db[0] = 0

	out := chart.Render(pipeline.Update{Spectrum: db}, testBands())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	labels := lines[len(lines)-1]
	assert.Contains(t, labels, "11Hz", "band 0 center is about 10.77 Hz")
	assert.Contains(t, labels, "kHz", "upper bands are in the kHz range")
}
