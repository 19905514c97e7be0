package tonecompare

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// SquareWaveConfig holds the generation parameters for a jittered square
// wave.
type SquareWaveConfig struct {
	// Frequency is the nominal tone frequency in Hz. Must be positive.
	Frequency float64

	// Duration is the waveform length in seconds. Must be positive.
	Duration float64

	// SampleRate is the generation sample rate in Hz. Zero selects
	// DefaultSampleRate.
	SampleRate int

	// PeriodStd is the standard deviation of the per-period length in
	// seconds. Zero disables jitter. Must not exceed 25% of the nominal
	// period.
	PeriodStd float64

	// Src is the random source for period draws. Nil selects a time-seeded
	// per-instance source. Supplying a fixed source makes generation
	// reproducible.
	Src rand.Source
}

// SquareWave synthesizes a square wave whose period length varies per
// period according to a normal distribution, modelling acoustic transducer
// timing jitter rather than fixed-frequency synthesis.
//
// Each period starts off (0) and stays off for half the nominal period,
// then switches on (1) for the remainder of that period's drawn length.
// Because the off portion is fixed at the nominal half-period while the
// total length is randomized, the per-period duty cycle varies around the
// 50% target. That asymmetry is the synthesis contract the timing analysis
// is calibrated against.
type SquareWave struct {
	baseWaveform
	cfg SquareWaveConfig
}

// NewSquareWave validates cfg and constructs a generator. Returns
// ErrInvalidParameter for non-positive frequency, duration, or sample rate,
// a negative period standard deviation, or one above 25% of the nominal
// period.
func NewSquareWave(cfg SquareWaveConfig) (*SquareWave, error) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}

	switch {
	case cfg.Frequency <= 0:
		return nil, fmt.Errorf("%w: frequency %g Hz must be positive", ErrInvalidParameter, cfg.Frequency)
	case cfg.Duration <= 0:
		return nil, fmt.Errorf("%w: duration %g s must be positive", ErrInvalidParameter, cfg.Duration)
	case cfg.SampleRate < 0:
		return nil, fmt.Errorf("%w: sample rate %d Hz must be positive", ErrInvalidParameter, cfg.SampleRate)
	case cfg.PeriodStd < 0:
		return nil, fmt.Errorf("%w: period standard deviation %g s must not be negative", ErrInvalidParameter, cfg.PeriodStd)
	case cfg.PeriodStd > maxPeriodStdRatio/cfg.Frequency:
		return nil, fmt.Errorf("%w: period standard deviation %g s exceeds 25%% of the nominal period %g s",
			ErrInvalidParameter, cfg.PeriodStd, 1/cfg.Frequency)
	}

	return &SquareWave{
		baseWaveform: baseWaveform{sampleRate: cfg.SampleRate},
		cfg:          cfg,
	}, nil
}

// Frequency returns the nominal tone frequency in Hz.
func (w *SquareWave) Frequency() float64 { return w.cfg.Frequency }

// Duration returns the configured duration in seconds.
func (w *SquareWave) Duration() float64 { return w.cfg.Duration }

// Create generates the square wave and applies the attached filters in
// order.
func (w *SquareWave) Create() error {
	w.generate()
	return w.applyFilters()
}

// generate builds the raw jittered square wave.
//
// The nominal period length in samples is kept fractional: it is the mean
// of the distribution the integer period lengths are drawn from, and
// rounding it early would bias every draw. The off portion of each period
// uses the nominal half-period, not the drawn period's own half, so jitter
// lands entirely in the on portion.
func (w *SquareWave) generate() {
	rate := float64(w.cfg.SampleRate)
	nominalPeriod := rate / w.cfg.Frequency
	totalSamples := int(math.Ceil(w.cfg.Duration * rate))
	periodCount := int(math.Ceil(float64(totalSamples) / nominalPeriod))

	src := w.cfg.Src
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	dist := distuv.Normal{
		Mu:    nominalPeriod,
		Sigma: w.cfg.PeriodStd * rate,
		Src:   src,
	}

	halfPeriod := int(nominalPeriod / halfPeriodDivisor)
	buf := make([]float64, totalSamples)

	// Walk the drawn period lengths, filling the on portion of each. Draws
	// that land past the buffer end are clamped; the index keeps advancing
	// so trailing samples stay at zero once the buffer is exhausted.
	idx := 0
	for range periodCount {
		period := int(math.Round(dist.Rand()))
		on := max(idx+halfPeriod, 0)
		end := min(idx+period, totalSamples)
		for j := on; j < end; j++ {
			buf[j] = 1
		}
		idx += period
	}

	w.samples = buf
}
