package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tonecompare "github.com/bigsdawg-2k/tone-comparator"
	"github.com/bigsdawg-2k/tone-comparator/internal/config"
)

// Configuration defaults matching the historical tool behavior.
const (
	defaultDuration   = 1.0 // seconds
	defaultSampleRate = tonecompare.DefaultSampleRate
	defaultPeriodStd  = 0.0     // seconds
	defaultLPFCutoff  = 10000.0 // Hz
	defaultLPFOrder   = 10
	defaultTargets    = "440,880"
)

// source pairs a waveform with its display name before analysis.
type source struct {
	name string
	wfm  tonecompare.Waveform
}

// sourceResult holds everything the stepping loop needs for one source.
type sourceResult struct {
	name         string
	samples      []float64
	rate         int
	spectralHz   float64
	timeDomainHz float64
	stats        tonecompare.TransitionStats
	peakMags     []float64
	bandRMS      []float64
}

// buildSources constructs the configured waveforms: one synthetic square
// tone per FREQS entry and one file-backed waveform per FILES entry. The
// target frequency list is also returned for ratio reporting.
func buildSources(cfg config.File) ([]source, []float64, error) {
	duration := cfg.Float("DURATION_s", defaultDuration)
	rate := cfg.Int("SAMPLE_RATE_Hz", defaultSampleRate)
	periodStd := cfg.Float("PERIOD_STD_s", defaultPeriodStd)
	cutoff := cfg.Float("LPF_CUTOFF_Hz", defaultLPFCutoff)
	order := cfg.Int("LPF_ORDER", defaultLPFOrder)

	// A single-frequency FREQS entry parses as a number, not a string.
	rawTargets := cfg.String("FREQS", defaultTargets)
	if f := cfg.Float("FREQS", 0); f > 0 {
		rawTargets = strconv.FormatFloat(f, 'g', -1, 64)
	}
	targets, err := parseFreqList(rawTargets)
	if err != nil {
		return nil, nil, fmt.Errorf("FREQS: %w", err)
	}

	lpf := tonecompare.FilterSpec{
		SampleRate: rate,
		Order:      order,
		Type:       tonecompare.FilterLowPass,
		Cutoff:     cutoff,
	}

	var sources []source
	for _, freq := range targets {
		wfm, err := tonecompare.NewSource(tonecompare.SourceConfig{
			Square: tonecompare.SquareWaveConfig{
				Frequency:  freq,
				Duration:   duration,
				SampleRate: rate,
				PeriodStd:  periodStd,
			},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("tone %g Hz: %w", freq, err)
		}
		if err := wfm.AddFilter(lpf); err != nil {
			return nil, nil, fmt.Errorf("tone %g Hz: %w", freq, err)
		}
		sources = append(sources, source{name: fmt.Sprintf("tone %g Hz", freq), wfm: wfm})
	}

	if files := cfg.String("FILES", ""); files != "" {
		for _, path := range strings.Split(files, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			wfm, err := tonecompare.NewSource(tonecompare.SourceConfig{Path: path})
			if err != nil {
				return nil, nil, fmt.Errorf("file %s: %w", path, err)
			}
			sources = append(sources, source{name: fmt.Sprintf("file %s", path), wfm: wfm})
		}
	}

	return sources, targets, nil
}

// analyzeSource creates the waveform and runs the full measurement set.
func analyzeSource(src source, targets []float64, verbose bool) (sourceResult, error) {
	if err := src.wfm.Create(); err != nil {
		return sourceResult{}, err
	}

	samples := src.wfm.Samples()
	rate := src.wfm.SampleRate()

	spectral, err := tonecompare.EstimateFrequency(samples, rate)
	if err != nil {
		return sourceResult{}, err
	}

	stats := tonecompare.AnalyzeTransitions(samples, tonecompare.DefaultThreshold, tonecompare.FallingEdge)
	timeDomain := 0.0
	if stats.Mean > 0 {
		timeDomain = float64(rate) / stats.Mean
	}

	res := sourceResult{
		name:         src.name,
		samples:      samples,
		rate:         rate,
		spectralHz:   spectral,
		timeDomainHz: timeDomain,
		stats:        stats,
	}

	if len(targets) >= 2 {
		if mags, err := tonecompare.PeakMagnitudes(samples, rate, targets...); err == nil {
			res.peakMags = mags
		}
		for _, f := range targets {
			rms, err := tonecompare.BandRMS(samples, rate, f, tonecompare.DefaultBandHalfWidth)
			if err != nil {
				res.bandRMS = nil
				break
			}
			res.bandRMS = append(res.bandRMS, rms)
		}
	}

	if verbose {
		log.Printf("%s: spectral=%.2f Hz time-domain=%.2f Hz mean=%.2f std=%.2f count=%d",
			src.name, spectral, timeDomain, stats.Mean, stats.Std, stats.Count)
	}
	return res, nil
}

// printSummary prints the comparison table and, when two or more target
// frequencies are configured, the strength ratios between the first two.
func printSummary(results []sourceResult, targets []float64) {
	fmt.Println("source                          spectral Hz   time-domain Hz   transitions")
	for _, res := range results {
		fmt.Printf("%-30s  %11.2f  %15.2f  %11d\n",
			res.name, res.spectralHz, res.timeDomainHz, res.stats.Count)
	}

	if len(targets) < 2 {
		return
	}
	fmt.Printf("\nstrength ratios at %g Hz vs %g Hz:\n", targets[0], targets[1])
	for _, res := range results {
		if len(res.peakMags) >= 2 && res.peakMags[1] > 0 {
			fmt.Printf("%-30s  FFT peak ratio %.3f", res.name, res.peakMags[0]/res.peakMags[1])
			if len(res.bandRMS) >= 2 && res.bandRMS[1] > 0 {
				fmt.Printf("  band RMS ratio %.3f", res.bandRMS[0]/res.bandRMS[1])
			}
			fmt.Println()
		}
	}
}

// parseFreqList parses a comma-separated list of frequencies in Hz.
func parseFreqList(s string) ([]float64, error) {
	var freqs []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad frequency %q: %w", part, err)
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}
