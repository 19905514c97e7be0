// Package wavio decodes and encodes the PCM WAV containers the comparison
// tool exchanges with the outside world. Decoded audio is always delivered
// as mono float64 samples normalized to [-1, 1]; encoded audio is always
// mono 16-bit PCM.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

// Sentinel errors for container decoding.
var (
	// ErrNotWAV indicates the input is not a parseable WAV container.
	ErrNotWAV = errors.New("not a valid WAV file")

	// ErrUnsupportedBitDepth indicates a PCM sample width other than the
	// supported 16-bit and 32-bit signed integer widths.
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)

// Supported PCM sample widths.
const (
	bitDepth16 = 16
	bitDepth32 = 32
)

// ReadFile decodes a WAV file into normalized mono samples and the sample
// rate stored in the container header.
func ReadFile(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes a WAV stream into normalized mono samples and the container
// sample rate. Multi-channel content is averaged down to mono; sample values
// are normalized by the maximum integer magnitude of the stored width.
func Read(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWAV
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth != bitDepth16 && bitDepth != bitDepth32 {
		return nil, 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode PCM data: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, 0, fmt.Errorf("%w: no channels", ErrNotWAV)
	}

	maxMagnitude := float64(int64(1)<<(bitDepth-1) - 1)
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := range frames {
		var sum float64
		for c := range channels {
			sum += float64(buf.Data[i*channels+c])
		}
		samples[i] = sum / float64(channels) / maxMagnitude
	}

	return samples, buf.Format.SampleRate, nil
}
