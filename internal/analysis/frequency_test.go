package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRate    = 8000.0
	testToneHz  = 440.0
	binExactTol = 1e-9
)

// makeSine builds amplitude*sin(2*pi*freq*t) for n samples at rate.
func makeSine(freq, amplitude, rate float64, n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return buf
}

func TestFundamentalFrequency_PureSine(t *testing.T) {
	// One full second at 8 kHz puts 440 Hz exactly on a bin.
	buf := makeSine(testToneHz, 1.0, testRate, int(testRate))

	freq, err := FundamentalFrequency(buf, testRate)
	require.NoError(t, err)
	assert.InDelta(t, testToneHz, freq, binExactTol)
}

func TestFundamentalFrequency_IgnoresDC(t *testing.T) {
	// A large DC offset must not win the peak search.
	buf := makeSine(testToneHz, 0.1, testRate, int(testRate))
	for i := range buf {
		buf[i] += 0.9
	}

	freq, err := FundamentalFrequency(buf, testRate)
	require.NoError(t, err)
	assert.InDelta(t, testToneHz, freq, binExactTol)
}

func TestFundamentalFrequency_Resolution(t *testing.T) {
	// A quarter-second buffer has 4 Hz resolution; the estimate must land
	// on the nearest bin.
	buf := makeSine(441, 1.0, testRate, int(testRate/4))

	freq, err := FundamentalFrequency(buf, testRate)
	require.NoError(t, err)
	assert.InDelta(t, 441, freq, 4.0)
}

func TestFundamentalFrequency_Errors(t *testing.T) {
	_, err := FundamentalFrequency(nil, testRate)
	assert.ErrorIs(t, err, ErrEmptyBuffer)

	_, err = FundamentalFrequency([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, err = FundamentalFrequency([]float64{1, 2, 3}, -8000)
	assert.Error(t, err)
}

func TestPeakMagnitudes_RelativeStrength(t *testing.T) {
	// 440 Hz at full amplitude plus 880 Hz at quarter amplitude: the
	// magnitude ratio recovers the amplitude ratio.
	n := int(testRate)
	buf := makeSine(440, 1.0, testRate, n)
	second := makeSine(880, 0.25, testRate, n)
	for i := range buf {
		buf[i] += second[i]
	}

	mags, err := PeakMagnitudes(buf, testRate, []float64{440, 880})
	require.NoError(t, err)
	require.Len(t, mags, 2)
	require.Positive(t, mags[1])
	assert.InDelta(t, 4.0, mags[0]/mags[1], 0.01)
}

func TestPeakMagnitudes_ClampsOutOfRangeBins(t *testing.T) {
	buf := makeSine(440, 1.0, testRate, 1000)

	mags, err := PeakMagnitudes(buf, testRate, []float64{-10, testRate})
	require.NoError(t, err)
	require.Len(t, mags, 2)
}

func TestPeakMagnitudes_EmptyBuffer(t *testing.T) {
	_, err := PeakMagnitudes(nil, testRate, []float64{440})
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestRMS(t *testing.T) {
	t.Run("sine", func(t *testing.T) {
		buf := makeSine(440, 0.5, testRate, int(testRate))
		assert.InDelta(t, 0.5/math.Sqrt2, RMS(buf), 1e-3)
	})

	t.Run("constant", func(t *testing.T) {
		buf := []float64{0.25, 0.25, 0.25, 0.25}
		assert.InDelta(t, 0.25, RMS(buf), 1e-12)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, RMS(nil))
	})
}
