package tonecompare

import (
	"errors"
	"fmt"

	"github.com/bigsdawg-2k/tone-comparator/internal/analysis"
	"github.com/bigsdawg-2k/tone-comparator/internal/wavio"
)

// FileWaveform is a comparison source decoded from a PCM WAV container.
// Generation is skipped: the buffer, sample rate, duration, and nominal
// frequency are all derived from the decoded content. Supported sample
// widths are 16-bit and 32-bit signed integer PCM; multi-channel files are
// averaged to mono.
type FileWaveform struct {
	baseWaveform
	path      string
	frequency float64
	duration  float64
}

// NewFileWaveform constructs a file-backed waveform for path. The file is
// not touched until Create runs.
func NewFileWaveform(path string) (*FileWaveform, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrUnspecifiedSource)
	}
	return &FileWaveform{path: path}, nil
}

// Create decodes the file and applies the attached filters in order.
func (w *FileWaveform) Create() error {
	samples, rate, err := wavio.ReadFile(w.path)
	if err != nil {
		if errors.Is(err, wavio.ErrUnsupportedBitDepth) || errors.Is(err, wavio.ErrNotWAV) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return err
	}

	w.samples = samples
	w.sampleRate = rate
	w.duration = float64(len(samples)) / float64(rate)

	// Estimation only fails on an empty decode (a data-less container);
	// Frequency then keeps its 0 sentinel rather than failing the load.
	if freq, err := analysis.FundamentalFrequency(samples, float64(rate)); err == nil {
		w.frequency = freq
	}

	return w.applyFilters()
}

// Frequency returns the fundamental frequency estimated from the decoded
// content. 0 is a sentinel, not a measurement: it means Create has not run
// or estimation did not produce a value.
func (w *FileWaveform) Frequency() float64 { return w.frequency }

// Duration returns the decoded duration in seconds, or 0 before Create.
func (w *FileWaveform) Duration() float64 { return w.duration }

// Path returns the source file path.
func (w *FileWaveform) Path() string { return w.path }
