package tonecompare

// DefaultSampleRate is the generation sample rate used when a configuration
// leaves the rate unset. 192 kHz keeps square-wave harmonics well below
// Nyquist for audio-band tones.
const DefaultSampleRate = 192000

// DefaultThreshold is the transition-detection threshold for waveforms
// normalized to the 0..1 square-wave range.
const DefaultThreshold = 0.5

// DefaultBandHalfWidth is the half-width in Hz of the band used for in-band
// energy comparison around a target tone.
const DefaultBandHalfWidth = 10.0

const (
	// maxPeriodStdRatio caps the period standard deviation at 25% of the
	// nominal period. Beyond that the jitter distribution routinely produces
	// periods shorter than the fixed off portion and the synthesis model
	// breaks down.
	maxPeriodStdRatio = 0.25

	// halfPeriodDivisor splits the nominal period into the fixed off
	// portion and the variable on portion.
	halfPeriodDivisor = 2

	// bandRMSOrder is the Butterworth order used for in-band energy
	// measurement.
	bandRMSOrder = 4
)
