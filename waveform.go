package tonecompare

import (
	"fmt"

	"github.com/bigsdawg-2k/tone-comparator/internal/filter"
)

// Waveform is a single comparison source: an owned sample buffer plus the
// ordered list of filters applied after the source samples are produced.
//
// Lifecycle: construct a variant, attach filters with AddFilter (order
// matters; filters run in attachment order), then call Create to produce
// the final buffer. Samples and SampleRate are only meaningful after Create
// returns nil.
type Waveform interface {
	// Create produces the waveform samples and applies the attached filters
	// in order. A failed Create leaves no usable buffer; discard the
	// instance.
	Create() error

	// Samples returns the sample buffer produced by Create.
	Samples() []float64

	// SampleRate returns the buffer's sample rate in Hz.
	SampleRate() int

	// AddFilter validates spec, derives its coefficients, and appends the
	// filter to the application list.
	AddFilter(spec FilterSpec) error
}

// attachedFilter pairs a spec with its derived coefficients so repeated
// application never re-runs the design.
type attachedFilter struct {
	spec   FilterSpec
	coeffs filter.Coefficients
}

// baseWaveform carries the buffer and filter pipeline shared by all
// waveform variants.
type baseWaveform struct {
	samples    []float64
	sampleRate int
	filters    []attachedFilter
}

// Samples returns the sample buffer produced by Create.
func (w *baseWaveform) Samples() []float64 { return w.samples }

// SampleRate returns the buffer's sample rate in Hz.
func (w *baseWaveform) SampleRate() int { return w.sampleRate }

// AddFilter validates spec, derives its coefficients, and appends the
// filter to the application list.
func (w *baseWaveform) AddFilter(spec FilterSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	coeffs, err := spec.design()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	w.filters = append(w.filters, attachedFilter{spec: spec, coeffs: coeffs})
	return nil
}

// applyFilters runs the attached filters in attachment order, replacing the
// held buffer after each pass.
func (w *baseWaveform) applyFilters() error {
	for _, af := range w.filters {
		if len(w.samples) < filter.MinInputLen(af.coeffs) {
			return fmt.Errorf("%w: %d samples is too short for zero-phase filtering at order %d",
				ErrInvalidInput, len(w.samples), af.coeffs.Order())
		}
		filtered, err := filter.FiltFilt(af.coeffs, w.samples)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		w.samples = filtered
	}
	return nil
}

// SourceConfig describes one comparison source. Exactly one source kind
// must be supplied: a WAV file path, or generation parameters (frequency
// and duration).
type SourceConfig struct {
	// Path locates a PCM WAV file to load. When set, generation parameters
	// are ignored.
	Path string

	// Square holds the generation parameters for a synthetic source.
	Square SquareWaveConfig
}

// NewSource constructs the waveform variant selected by cfg. Returns
// ErrUnspecifiedSource when neither a path nor generation parameters are
// given.
func NewSource(cfg SourceConfig) (Waveform, error) {
	switch {
	case cfg.Path != "":
		return NewFileWaveform(cfg.Path)
	case cfg.Square.Frequency > 0 && cfg.Square.Duration > 0:
		return NewSquareWave(cfg.Square)
	default:
		return nil, fmt.Errorf("%w: need a file path or frequency and duration", ErrUnspecifiedSource)
	}
}
