package tonecompare

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigsdawg-2k/tone-comparator/internal/testutil"
)

// TestRoundTrip_PreservesFrequency generates a jittered square wave, writes
// it to disk, reads it back, and verifies the spectral estimate survives the
// 16-bit quantization.
func TestRoundTrip_PreservesFrequency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.wav")

	const freq = 880.0
	samples, err := GenerateFilteredSquareWave(SquareWaveConfig{
		Frequency:  freq,
		Duration:   1.0,
		SampleRate: 48000,
		PeriodStd:  2.0 / 48000,
		Src:        testSource(),
	})
	require.NoError(t, err)

	require.NoError(t, WriteWAV(path, samples, 48000))

	decoded, rate, err := ReadWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 48000, rate)
	require.Len(t, decoded, len(samples))

	got, err := EstimateFrequency(decoded, rate)
	require.NoError(t, err)
	testutil.AssertRelativeError(t, freq, got, testutil.FrequencyTolerance)
}

// TestFileWaveform_UsesContainerRate verifies that a loaded file reports the
// rate stored in its header, not the generation default.
func TestFileWaveform_UsesContainerRate(t *testing.T) {
	const (
		fileRate = 11025
		freq     = 440.0
	)
	path := filepath.Join(t.TempDir(), "sine.wav")

	sine := make([]float64, fileRate)
	for i := range sine {
		sine[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/fileRate)
	}
	require.NoError(t, WriteWAV(path, sine, fileRate))

	w, err := NewFileWaveform(path)
	require.NoError(t, err)
	require.NoError(t, w.Create())

	assert.Equal(t, fileRate, w.SampleRate())
	assert.InDelta(t, 1.0, w.Duration(), 1e-9)
	testutil.AssertRelativeError(t, freq, w.Frequency(), testutil.FrequencyTolerance)
	assert.Equal(t, path, w.Path())
}

func TestFileWaveform_AppliesFilters(t *testing.T) {
	const fileRate = 8000
	path := filepath.Join(t.TempDir(), "mix.wav")

	// 100 Hz tone plus 3 kHz interference; a low-pass leaves only the tone.
	buf := make([]float64, fileRate)
	for i := range buf {
		ti := float64(i) / fileRate
		buf[i] = 0.5*math.Sin(2*math.Pi*100*ti) + 0.3*math.Sin(2*math.Pi*3000*ti)
	}
	require.NoError(t, WriteWAV(path, buf, fileRate))

	w, err := NewFileWaveform(path)
	require.NoError(t, err)
	require.NoError(t, w.AddFilter(FilterSpec{
		SampleRate: fileRate,
		Order:      6,
		Type:       FilterLowPass,
		Cutoff:     500,
	}))
	require.NoError(t, w.Create())

	got, err := EstimateFrequency(w.Samples(), w.SampleRate())
	require.NoError(t, err)
	testutil.AssertRelativeError(t, 100, got, testutil.FrequencyTolerance)
}

func TestNewFileWaveform_EmptyPath(t *testing.T) {
	_, err := NewFileWaveform("")
	assert.ErrorIs(t, err, ErrUnspecifiedSource)
}

// TestFileWaveform_ZeroSentinelsBeforeCreate verifies that content-derived
// accessors report their 0 sentinels until Create has decoded the file.
func TestFileWaveform_ZeroSentinelsBeforeCreate(t *testing.T) {
	w, err := NewFileWaveform("tone.wav")
	require.NoError(t, err)

	assert.Zero(t, w.Frequency())
	assert.Zero(t, w.Duration())
	assert.Zero(t, w.SampleRate())
	assert.Empty(t, w.Samples())
}

func TestFileWaveform_CreateErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		w, err := NewFileWaveform(filepath.Join(t.TempDir(), "missing.wav"))
		require.NoError(t, err)
		assert.Error(t, w.Create())
	})

	t.Run("not_a_wav", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.wav")
		require.NoError(t, os.WriteFile(path, []byte("not a riff container at all"), 0o644))

		w, err := NewFileWaveform(path)
		require.NoError(t, err)
		assert.ErrorIs(t, w.Create(), ErrInvalidInput)
	})
}
