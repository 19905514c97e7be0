package wavio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
)

const (
	// headroomScale leaves 20% headroom below full scale when quantizing, so
	// downstream playback chains cannot clip a waveform that analysis
	// considers full amplitude.
	headroomScale = 0.8

	// maxInt16 is the largest positive 16-bit PCM sample value.
	maxInt16 = 1<<15 - 1

	pcmFormat = 1
)

// WriteFile encodes samples as a mono 16-bit PCM WAV file at sampleRate.
func WriteFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}

	if err := Write(f, samples, sampleRate); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Write encodes samples as mono 16-bit PCM WAV. The buffer is scaled so its
// peak lands at 80% of full scale before quantizing.
func Write(ws io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("non-positive sample rate %d", sampleRate)
	}

	pcm := Quantize16(samples)
	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(ws, sampleRate, bitDepth16, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// Quantize16 scales samples so the peak magnitude sits at 80% of the 16-bit
// range and rounds to signed 16-bit PCM. A silent buffer quantizes to zeros.
func Quantize16(samples []float64) []int16 {
	var peak float64
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	scaled := make([]float64, len(samples))
	if peak > 0 {
		f64.Scale(scaled, samples, headroomScale*maxInt16/peak)
	}

	pcm := make([]int16, len(samples))
	for i, v := range scaled {
		pcm[i] = int16(math.Round(v))
	}
	return pcm
}
