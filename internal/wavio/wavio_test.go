package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRate   = 8000
	testToneHz = 440.0
)

func makeSine(freq, amplitude float64, rate, n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return buf
}

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	original := makeSine(testToneHz, 0.5, testRate, testRate/2)

	require.NoError(t, WriteFile(path, original, testRate))

	samples, rate, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testRate, rate)
	require.Len(t, samples, len(original))

	// Writing rescales the peak to 80% of full range, so the decoded
	// buffer is the original scaled by 0.8/peak, plus quantization noise.
	var peak float64
	for _, v := range original {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	gain := 0.8 / peak
	for i := range original {
		assert.InDelta(t, original[i]*gain, samples[i], 1e-4, "sample %d", i)
	}
}

func TestWrite_SilentBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	require.NoError(t, WriteFile(path, make([]float64, 100), testRate))

	samples, rate, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testRate, rate)
	for i, v := range samples {
		assert.Zero(t, v, "sample %d", i)
	}
}

func TestWrite_InvalidRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	assert.Error(t, WriteFile(path, []float64{0, 1}, 0))
}

func TestRead_StereoAveragedToMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")

	// Interleaved stereo with constant levels per channel.
	const frames = 200
	const left, right = 1000, 3000
	data := make([]int, frames*2)
	for i := range frames {
		data[i*2] = left
		data[i*2+1] = right
	}
	writeRaw(t, path, data, 16, 2)

	samples, rate, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testRate, rate)
	require.Len(t, samples, frames)

	want := float64(left+right) / 2 / float64(1<<15-1)
	for i, v := range samples {
		assert.InDelta(t, want, v, 1e-9, "sample %d", i)
	}
}

func TestRead_UnsupportedBitDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep.wav")
	writeRaw(t, path, make([]int, 100), 24, 1)

	_, _, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)
}

func TestRead_NotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a riff container"), 0o644))

	_, _, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrNotWAV)
}

func TestQuantize16(t *testing.T) {
	t.Run("peak_scaled_to_headroom", func(t *testing.T) {
		pcm := Quantize16([]float64{0, 0.5, -0.5, 0.25})
		require.Len(t, pcm, 4)

		wantPeak := int16(math.Round(0.8 * float64(1<<15-1)))
		assert.Equal(t, int16(0), pcm[0])
		assert.Equal(t, wantPeak, pcm[1])
		assert.Equal(t, -wantPeak, pcm[2])
		assert.Equal(t, int16(math.Round(0.4*float64(1<<15-1))), pcm[3])
	})

	t.Run("silence", func(t *testing.T) {
		pcm := Quantize16(make([]float64, 10))
		for i, s := range pcm {
			assert.Zero(t, s, "sample %d", i)
		}
	})
}

// writeRaw writes a WAV file with full control over bit depth and channel
// count, bypassing the package encoder.
func writeRaw(t *testing.T, path string, data []int, bitDepth, channels int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, testRate, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: channels, SampleRate: testRate},
		SourceBitDepth: bitDepth,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}
