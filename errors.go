package tonecompare

import "errors"

// Common errors returned by waveform construction and analysis.
var (
	// ErrInvalidParameter indicates malformed construction arguments:
	// non-positive frequency, duration, sample rate, or filter order; a
	// cutoff outside (0, Nyquist); or a period standard deviation above 25%
	// of the nominal period.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput indicates a buffer unsuitable for the requested
	// operation, such as one too short for zero-phase filtering at the
	// attached filter's order, or a container with an unsupported sample
	// width.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnspecifiedSource indicates a waveform was requested with neither
	// a file path nor generation parameters.
	ErrUnspecifiedSource = errors.New("unspecified waveform source")
)
