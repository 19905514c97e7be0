// Package analysis provides time-domain and spectral measurements over
// sampled waveforms: threshold-crossing statistics, fundamental-frequency
// estimation, and band energy.
package analysis

import (
	"gonum.org/v1/gonum/stat"
)

// Edge selects the threshold-crossing direction to detect.
type Edge int

const (
	// RisingEdge detects crossings where the previous sample is below the
	// threshold and the current sample is at or above it.
	RisingEdge Edge = iota

	// FallingEdge detects crossings where the previous sample is above the
	// threshold and the current sample is at or below it.
	FallingEdge
)

// Transitions scans samples for threshold crossings in the given direction
// and reports the gap statistics between consecutive crossing indices. A
// crossing is recorded at the index of the second sample of the pair.
//
// When fewer than two crossings are found there are no gaps to measure:
// count still reports the raw crossings found, mean and std are zero. Std is
// the population standard deviation, since the gaps are the complete set of
// observed periods rather than a sample of a larger one.
func Transitions(samples []float64, threshold float64, edge Edge) (mean, std float64, count int) {
	var indices []int
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		var crossed bool
		if edge == RisingEdge {
			crossed = prev < threshold && cur >= threshold
		} else {
			crossed = prev > threshold && cur <= threshold
		}
		if crossed {
			indices = append(indices, i)
		}
	}

	count = len(indices)
	if count < 2 {
		return 0, 0, count
	}

	gaps := make([]float64, count-1)
	for i := 1; i < count; i++ {
		gaps[i-1] = float64(indices[i] - indices[i-1])
	}
	return stat.Mean(gaps, nil), stat.PopStdDev(gaps, nil), count
}
