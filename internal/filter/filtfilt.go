package filter

import (
	"fmt"
)

// edgeFactor sets the reflection padding length as a multiple of the
// coefficient count, matching the conventional forward-backward scheme.
const edgeFactor = 3

// MinInputLen returns the shortest signal FiltFilt accepts for c. The
// forward-backward method reflects edgeFactor×len(coefficients) samples at
// each end, so the signal must be strictly longer than that.
func MinInputLen(c Coefficients) int {
	return edgeFactor*max(len(c.B), len(c.A)) + 1
}

// FiltFilt applies the filter forward and then backward over x, producing a
// zero-phase result of identical length. The net group delay is zero, so
// transition timing in the output stays aligned with the input; this is the
// property the downstream edge analysis depends on.
//
// Edge transients are suppressed by extending the signal at both ends with
// odd reflections and starting each pass from the filter's step-response
// steady state (Gustafsson's method). Returns ErrInputTooShort when x is not
// longer than the reflection padding.
func FiltFilt(c Coefficients, x []float64) ([]float64, error) {
	b, a, err := normalize(c)
	if err != nil {
		return nil, err
	}

	edge := edgeFactor * len(b)
	if len(x) <= edge {
		return nil, fmt.Errorf("%w: %d samples, need more than %d for order %d",
			ErrInputTooShort, len(x), edge, c.Order())
	}

	zi := steadyState(b, a)

	// Odd extension at both ends reduces startup and ending transients.
	ext := make([]float64, 0, len(x)+2*edge)
	first, last := x[0], x[len(x)-1]
	for i := edge; i >= 1; i-- {
		ext = append(ext, 2*first-x[i])
	}
	ext = append(ext, x...)
	for i := 1; i <= edge; i++ {
		ext = append(ext, 2*last-x[len(x)-1-i])
	}

	y := applyDirect(b, a, ext, zi, ext[0])

	reverse(y)
	y = applyDirect(b, a, y, zi, y[0])
	reverse(y)

	return y[edge : edge+len(x)], nil
}

// normalize pads b and a to equal length and scales both so that a[0] == 1.
func normalize(c Coefficients) (b, a []float64, err error) {
	if len(c.A) == 0 || len(c.B) == 0 {
		return nil, nil, fmt.Errorf("%w: empty coefficient sequence", ErrInvalidSpec)
	}
	if c.A[0] == 0 {
		return nil, nil, fmt.Errorf("%w: leading denominator coefficient is zero", ErrInvalidSpec)
	}

	n := max(len(c.B), len(c.A))
	b = make([]float64, n)
	a = make([]float64, n)
	copy(b, c.B)
	copy(a, c.A)

	if a[0] != 1 {
		inv := 1 / a[0]
		for i := range b {
			b[i] *= inv
		}
		for i := range a {
			a[i] *= inv
		}
	}
	return b, a, nil
}

// steadyState computes the direct-form II transposed state that makes the
// filter start in its unit-step steady state. Scaling this by the first
// input sample removes the startup transient of each pass.
func steadyState(b, a []float64) []float64 {
	n := len(b) - 1
	if n == 0 {
		return nil
	}

	var sumB, sumA float64
	for i := range b {
		sumB += b[i]
		sumA += a[i]
	}
	dcGain := 0.0
	if sumA != 0 {
		dcGain = sumB / sumA
	}

	zi := make([]float64, n)
	zi[n-1] = b[n] - dcGain*a[n]
	for i := n - 2; i >= 0; i-- {
		zi[i] = zi[i+1] + b[i+1] - dcGain*a[i+1]
	}
	return zi
}

// applyDirect runs a single direct-form II transposed pass over x with the
// initial state zi scaled by x0. Coefficients must be normalized and of
// equal length.
func applyDirect(b, a, x, zi []float64, x0 float64) []float64 {
	n := len(b) - 1
	y := make([]float64, len(x))

	if n == 0 {
		for i, xi := range x {
			y[i] = b[0] * xi
		}
		return y
	}

	w := make([]float64, n)
	for i := range w {
		w[i] = zi[i] * x0
	}

	for i, xi := range x {
		yi := b[0]*xi + w[0]
		for j := 0; j < n-1; j++ {
			w[j] = w[j+1] + b[j+1]*xi - a[j+1]*yi
		}
		w[n-1] = b[n]*xi - a[n]*yi
		y[i] = yi
	}
	return y
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
