package tonecompare

import (
	"fmt"

	"github.com/bigsdawg-2k/tone-comparator/internal/analysis"
	"github.com/bigsdawg-2k/tone-comparator/internal/filter"
)

// Edge selects the threshold-crossing direction for transition analysis.
type Edge int

const (
	// RisingEdge detects upward threshold crossings.
	RisingEdge Edge = iota

	// FallingEdge detects downward threshold crossings.
	FallingEdge
)

// TransitionStats summarizes threshold-crossing timing across a buffer.
// Mean and Std are only meaningful when Count >= 2; with fewer crossings
// both are zero while Count still reports the raw crossings found.
type TransitionStats struct {
	// Mean is the mean gap between consecutive crossings, in samples.
	Mean float64

	// Std is the population standard deviation of the gaps, in samples.
	Std float64

	// Count is the number of crossings found.
	Count int
}

// AnalyzeTransitions scans samples for threshold crossings in the given
// direction and reports timing statistics. A crossing is recorded at the
// index of the second sample of the crossing pair.
func AnalyzeTransitions(samples []float64, threshold float64, edge Edge) TransitionStats {
	dir := analysis.RisingEdge
	if edge == FallingEdge {
		dir = analysis.FallingEdge
	}
	mean, std, count := analysis.Transitions(samples, threshold, dir)
	return TransitionStats{Mean: mean, Std: std, Count: count}
}

// EstimateFrequency reports the fundamental frequency of samples via
// spectral peak detection. Resolution is bounded below by
// sampleRate/len(samples) Hz.
func EstimateFrequency(samples []float64, sampleRate int) (float64, error) {
	freq, err := analysis.FundamentalFrequency(samples, float64(sampleRate))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return freq, nil
}

// PeakMagnitudes returns the spectral magnitude at the bin nearest each
// target frequency, for comparing the relative strength of known tones in
// one capture.
func PeakMagnitudes(samples []float64, sampleRate int, freqs ...float64) ([]float64, error) {
	mags, err := analysis.PeakMagnitudes(samples, float64(sampleRate), freqs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return mags, nil
}

// BandRMS measures the in-band energy of samples around freq: the buffer is
// band-pass filtered (zero phase, 4th-order Butterworth, freq±halfWidth Hz)
// and the RMS amplitude of the result returned.
func BandRMS(samples []float64, sampleRate int, freq, halfWidth float64) (float64, error) {
	spec := FilterSpec{
		SampleRate: sampleRate,
		Order:      bandRMSOrder,
		Type:       FilterBandPass,
		BandLow:    freq - halfWidth,
		BandHigh:   freq + halfWidth,
	}
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	coeffs, err := spec.design()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	filtered, err := filter.FiltFilt(coeffs, samples)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return analysis.RMS(filtered), nil
}
