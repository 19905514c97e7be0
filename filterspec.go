package tonecompare

import (
	"fmt"

	"github.com/bigsdawg-2k/tone-comparator/internal/filter"
)

// FilterType identifies the response shape of a filter specification.
type FilterType int

const (
	// FilterLowPass passes frequencies below Cutoff.
	FilterLowPass FilterType = iota

	// FilterHighPass passes frequencies above Cutoff.
	FilterHighPass

	// FilterBandPass passes frequencies between BandLow and BandHigh.
	FilterBandPass
)

// String returns a human-readable name for the filter type.
func (t FilterType) String() string {
	switch t {
	case FilterLowPass:
		return "low-pass"
	case FilterHighPass:
		return "high-pass"
	case FilterBandPass:
		return "band-pass"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// FilterSpec describes one Butterworth digital filter to apply to a
// waveform. Cutoff is used by low-pass and high-pass specs; BandLow and
// BandHigh by band-pass specs. All frequencies are in Hz and must lie
// strictly between 0 and the Nyquist frequency (SampleRate/2).
//
// A spec is immutable once attached: coefficients are derived when the
// filter is added to a waveform and cached alongside it for repeated
// application.
type FilterSpec struct {
	// SampleRate is the sample rate the filter is designed against, in Hz.
	SampleRate int

	// Order is the Butterworth prototype order. Must be positive.
	Order int

	// Type selects the response shape.
	Type FilterType

	// Cutoff is the corner frequency for low-pass and high-pass filters.
	Cutoff float64

	// BandLow and BandHigh are the band edges for band-pass filters.
	BandLow  float64
	BandHigh float64
}

// Validate checks the specification against the Nyquist and order
// constraints.
func (s FilterSpec) Validate() error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: filter sample rate %d must be positive", ErrInvalidParameter, s.SampleRate)
	}
	if s.Order <= 0 {
		return fmt.Errorf("%w: filter order %d must be positive", ErrInvalidParameter, s.Order)
	}

	nyquist := float64(s.SampleRate) / 2
	switch s.Type {
	case FilterLowPass, FilterHighPass:
		if s.Cutoff <= 0 || s.Cutoff >= nyquist {
			return fmt.Errorf("%w: cutoff %g Hz outside (0, %g)", ErrInvalidParameter, s.Cutoff, nyquist)
		}
	case FilterBandPass:
		if s.BandLow <= 0 || s.BandHigh >= nyquist || s.BandLow >= s.BandHigh {
			return fmt.Errorf("%w: band %g..%g Hz outside (0, %g) or not ascending",
				ErrInvalidParameter, s.BandLow, s.BandHigh, nyquist)
		}
	default:
		return fmt.Errorf("%w: unknown filter type %d", ErrInvalidParameter, int(s.Type))
	}
	return nil
}

// design derives the transfer-function coefficients for the spec.
func (s FilterSpec) design() (filter.Coefficients, error) {
	rate := float64(s.SampleRate)
	switch s.Type {
	case FilterLowPass:
		return filter.DesignLowPass(s.Order, s.Cutoff, rate)
	case FilterHighPass:
		return filter.DesignHighPass(s.Order, s.Cutoff, rate)
	case FilterBandPass:
		return filter.DesignBandPass(s.Order, s.BandLow, s.BandHigh, rate)
	default:
		return filter.Coefficients{}, fmt.Errorf("%w: unknown filter type %d", ErrInvalidParameter, int(s.Type))
	}
}
