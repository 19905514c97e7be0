package tonecompare

import (
	"github.com/bigsdawg-2k/tone-comparator/internal/wavio"
)

// GenerateFilteredSquareWave generates a jittered square wave and applies
// the given filters in order, returning the final sample buffer. It is the
// one-shot form of constructing a [SquareWave], attaching filters, and
// calling Create.
func GenerateFilteredSquareWave(cfg SquareWaveConfig, specs ...FilterSpec) ([]float64, error) {
	w, err := NewSquareWave(cfg)
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		if err := w.AddFilter(spec); err != nil {
			return nil, err
		}
	}
	if err := w.Create(); err != nil {
		return nil, err
	}
	return w.Samples(), nil
}

// WriteWAV serializes samples to a mono 16-bit PCM WAV file, scaled to 80%
// of full range.
func WriteWAV(path string, samples []float64, sampleRate int) error {
	return wavio.WriteFile(path, samples, sampleRate)
}

// ReadWAV decodes a PCM WAV file into normalized mono samples and the
// sample rate stored in the container header.
func ReadWAV(path string) ([]float64, int, error) {
	return wavio.ReadFile(path)
}
