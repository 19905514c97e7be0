// Package tonecompare synthesizes and analyzes audio tones for side-by-side
// frequency comparison.
//
// The package generates jittered square waves with controllable period
// variance, applies zero-phase Butterworth filtering, and measures the
// result in both the time domain (threshold-crossing timing statistics) and
// the frequency domain (spectral peak fundamental estimation). Waveforms may
// also be loaded from PCM WAV files, so live captures and generated tones
// can be compared with the same measurements.
//
// # Quick Start
//
// Generate a filtered 880 Hz square wave and measure it:
//
//	sq, err := tonecompare.NewSquareWave(tonecompare.SquareWaveConfig{
//	    Frequency: 880,
//	    Duration:  1,
//	    PeriodStd: 5.0 / tonecompare.DefaultSampleRate,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = sq.AddFilter(tonecompare.FilterSpec{
//	    SampleRate: tonecompare.DefaultSampleRate,
//	    Order:      10,
//	    Type:       tonecompare.FilterLowPass,
//	    Cutoff:     10000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sq.Create(); err != nil {
//	    log.Fatal(err)
//	}
//
//	stats := tonecompare.AnalyzeTransitions(sq.Samples(), tonecompare.DefaultThreshold, tonecompare.FallingEdge)
//	freq, _ := tonecompare.EstimateFrequency(sq.Samples(), sq.SampleRate())
//
// # Waveform Variants
//
// [SquareWave] synthesizes a square wave whose per-period length is drawn
// from a normal distribution, modelling transducer timing jitter.
// [FileWaveform] decodes an existing PCM WAV capture. Both share the same
// filter pipeline: filters attached with AddFilter are designed once and
// applied in attachment order when Create runs.
//
// # Zero-Phase Filtering
//
// Attached filters are applied forward and backward so the net phase shift
// is zero. Transition timing in the filtered output therefore stays aligned
// with the raw waveform, which the time-domain measurements require.
//
// # Randomness
//
// Each SquareWave owns its random source. Supply Src in the configuration
// for reproducible generation; leave it nil for a time-seeded source.
// Independent instances never share generator state, so parallel generation
// needs no synchronization.
package tonecompare
