package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptyBuffer indicates a spectral operation was asked to run on a
// zero-length sample buffer.
var ErrEmptyBuffer = errors.New("empty sample buffer")

// FundamentalFrequency estimates the dominant periodic component of samples
// via spectral peak picking: compute the real-valued FFT magnitude spectrum,
// discard the DC bin, and report the center frequency of the strongest
// remaining bin.
//
// Resolution is 1/duration Hz (sampleRate/len(samples)); callers needing a
// tighter estimate must supply a longer buffer.
func FundamentalFrequency(samples []float64, sampleRate float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyBuffer
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("non-positive sample rate %g", sampleRate)
	}

	fft := fourier.NewFFT(len(samples))
	coeffs := fft.Coefficients(nil, samples)

	// Bin 0 is DC; a constant offset must not win the peak search.
	peak, peakMag := 0, 0.0
	for i := 1; i < len(coeffs); i++ {
		if m := cmplx.Abs(coeffs[i]); m > peakMag {
			peak, peakMag = i, m
		}
	}
	return fft.Freq(peak) * sampleRate, nil
}

// PeakMagnitudes returns the spectral magnitude at the bin nearest each of
// the target frequencies. Used to compare the relative strength of known
// tones within one capture.
func PeakMagnitudes(samples []float64, sampleRate float64, freqs []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("non-positive sample rate %g", sampleRate)
	}

	fft := fourier.NewFFT(len(samples))
	coeffs := fft.Coefficients(nil, samples)

	mags := make([]float64, len(freqs))
	for i, f := range freqs {
		bin := int(math.Round(f * float64(len(samples)) / sampleRate))
		if bin < 0 {
			bin = 0
		}
		if bin >= len(coeffs) {
			bin = len(coeffs) - 1
		}
		mags[i] = cmplx.Abs(coeffs[bin])
	}
	return mags, nil
}
