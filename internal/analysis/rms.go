package analysis

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// RMS returns the root-mean-square amplitude of samples, or 0 for an empty
// buffer. Used as the in-band energy measure after band-pass filtering.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sumSquares := f64.DotProductUnsafe(samples, samples)
	return math.Sqrt(sumSquares / float64(len(samples)))
}
