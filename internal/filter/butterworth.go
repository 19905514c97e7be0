// Package filter provides Butterworth IIR filter design and zero-phase
// filter application for waveform analysis.
package filter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Sentinel errors returned by filter design and application.
var (
	// ErrInvalidSpec indicates malformed design parameters (order, cutoff, rate).
	ErrInvalidSpec = errors.New("invalid filter specification")

	// ErrInputTooShort indicates the signal is shorter than the zero-phase
	// method's minimum length for the designed filter.
	ErrInputTooShort = errors.New("input shorter than zero-phase minimum")
)

const (
	// bilinearRate is the virtual sample rate used during the bilinear
	// transform. Cutoffs are normalized against Nyquist first, so any fixed
	// rate yields identical digital coefficients; 2.0 keeps the prewarp
	// arithmetic in the conventional form.
	bilinearRate = 2.0

	// nyquistDivisor converts a sample rate to its Nyquist frequency.
	nyquistDivisor = 2.0
)

// Type identifies the frequency response shape of a designed filter.
type Type int

const (
	// LowPass passes frequencies below the cutoff.
	LowPass Type = iota

	// HighPass passes frequencies above the cutoff.
	HighPass

	// BandPass passes frequencies between the two band edges.
	BandPass
)

// String returns a human-readable name for the filter type.
func (t Type) String() string {
	switch t {
	case LowPass:
		return "low-pass"
	case HighPass:
		return "high-pass"
	case BandPass:
		return "band-pass"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Coefficients holds the transfer function of a designed digital filter in
// descending powers of z: B is the numerator, A the denominator. A[0] is
// normalized to 1.
type Coefficients struct {
	B []float64
	A []float64
}

// Order returns the filter order implied by the coefficient lengths.
func (c Coefficients) Order() int {
	return max(len(c.B), len(c.A)) - 1
}

// DesignLowPass designs a Butterworth low-pass filter with the given order
// and cutoff frequency (Hz) at the given sample rate (Hz).
func DesignLowPass(order int, cutoff, sampleRate float64) (Coefficients, error) {
	return Design(order, []float64{cutoff}, sampleRate, LowPass)
}

// DesignHighPass designs a Butterworth high-pass filter with the given order
// and cutoff frequency (Hz) at the given sample rate (Hz).
func DesignHighPass(order int, cutoff, sampleRate float64) (Coefficients, error) {
	return Design(order, []float64{cutoff}, sampleRate, HighPass)
}

// DesignBandPass designs a Butterworth band-pass filter passing the band
// (low, high) Hz at the given sample rate (Hz). The resulting transfer
// function has twice the prototype order, as is conventional for band-pass
// transformations.
func DesignBandPass(order int, low, high, sampleRate float64) (Coefficients, error) {
	return Design(order, []float64{low, high}, sampleRate, BandPass)
}

// Design computes Butterworth transfer-function coefficients.
//
// The design follows the classical analog-prototype route: place the
// prototype poles on the unit circle in the left half plane, frequency-warp
// the requested cutoffs, apply the low-pass / high-pass / band-pass
// transformation in the analog domain, then map to the digital domain with
// the bilinear transform and expand the pole/zero form into polynomial
// coefficients.
//
// Cutoffs are in Hz and must lie strictly between 0 and the Nyquist
// frequency (sampleRate/2). Low-pass and high-pass take one cutoff,
// band-pass takes two in ascending order. The design is a closed-form
// computation: deterministic and side-effect free.
func Design(order int, cutoffs []float64, sampleRate float64, typ Type) (Coefficients, error) {
	if order <= 0 {
		return Coefficients{}, fmt.Errorf("%w: order %d must be positive", ErrInvalidSpec, order)
	}
	if sampleRate <= 0 {
		return Coefficients{}, fmt.Errorf("%w: sample rate %g must be positive", ErrInvalidSpec, sampleRate)
	}

	nyquist := sampleRate / nyquistDivisor
	for _, c := range cutoffs {
		if c <= 0 || c >= nyquist {
			return Coefficients{}, fmt.Errorf("%w: cutoff %g Hz outside (0, %g)", ErrInvalidSpec, c, nyquist)
		}
	}

	switch typ {
	case LowPass, HighPass:
		if len(cutoffs) != 1 {
			return Coefficients{}, fmt.Errorf("%w: %s takes exactly one cutoff, got %d", ErrInvalidSpec, typ, len(cutoffs))
		}
	case BandPass:
		if len(cutoffs) != 2 {
			return Coefficients{}, fmt.Errorf("%w: band-pass takes exactly two cutoffs, got %d", ErrInvalidSpec, len(cutoffs))
		}
		if cutoffs[0] >= cutoffs[1] {
			return Coefficients{}, fmt.Errorf("%w: band edges %g..%g Hz not ascending", ErrInvalidSpec, cutoffs[0], cutoffs[1])
		}
	default:
		return Coefficients{}, fmt.Errorf("%w: unknown filter type %d", ErrInvalidSpec, int(typ))
	}

	// Analog Butterworth prototype: order poles evenly spaced on the unit
	// circle in the left half plane, no zeros, unit gain.
	poles := make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+1) / float64(2*order)
		poles[k] = complex(-math.Sin(theta), math.Cos(theta))
	}
	var zeros []complex128
	gain := 1.0

	// Prewarp the cutoffs so the bilinear transform lands them exactly.
	warped := make([]float64, len(cutoffs))
	for i, c := range cutoffs {
		wn := c / nyquist
		warped[i] = 2 * bilinearRate * math.Tan(math.Pi*wn/bilinearRate)
	}

	switch typ {
	case LowPass:
		w := warped[0]
		for i := range poles {
			poles[i] *= complex(w, 0)
		}
		gain *= math.Pow(w, float64(order))

	case HighPass:
		w := warped[0]
		prod := complex(1, 0)
		for i, p := range poles {
			prod *= -p
			poles[i] = complex(w, 0) / p
		}
		zeros = make([]complex128, order)
		gain *= real(1 / prod)

	case BandPass:
		bw := warped[1] - warped[0]
		w0 := math.Sqrt(warped[0] * warped[1])
		transformed := make([]complex128, 0, 2*order)
		for _, p := range poles {
			pb := p * complex(bw/2, 0)
			d := cmplx.Sqrt(pb*pb - complex(w0*w0, 0))
			transformed = append(transformed, pb+d, pb-d)
		}
		poles = transformed
		zeros = make([]complex128, order)
		gain *= math.Pow(bw, float64(order))
	}

	// Bilinear transform to the digital domain.
	fs2 := complex(2*bilinearRate, 0)
	num, den := complex(1, 0), complex(1, 0)
	for _, z := range zeros {
		num *= fs2 - z
	}
	for _, p := range poles {
		den *= fs2 - p
	}
	gain *= real(num / den)

	digitalZeros := make([]complex128, len(zeros), len(poles))
	for i, z := range zeros {
		digitalZeros[i] = (fs2 + z) / (fs2 - z)
	}
	digitalPoles := make([]complex128, len(poles))
	for i, p := range poles {
		digitalPoles[i] = (fs2 + p) / (fs2 - p)
	}

	// Zeros at infinity map to the Nyquist point z = -1.
	for len(digitalZeros) < len(digitalPoles) {
		digitalZeros = append(digitalZeros, complex(-1, 0))
	}

	b := polynomial(digitalZeros)
	for i := range b {
		b[i] *= gain
	}
	a := polynomial(digitalPoles)

	return Coefficients{B: b, A: a}, nil
}

// polynomial expands a set of roots into real polynomial coefficients in
// descending powers. Complex roots must occur in conjugate pairs; the
// imaginary residue is discarded.
func polynomial(roots []complex128) []float64 {
	coeffs := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}
	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}
