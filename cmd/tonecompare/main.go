// Command tonecompare steps through tone sources and compares their
// frequencies.
//
// Sources are synthetic square-wave tones and/or PCM WAV captures listed in
// a flat key:value configuration file. Each source is generated or decoded,
// analyzed in the time domain (transition timing) and frequency domain
// (spectral peak), and presented one at a time so an operator can compare
// them by ear and by number.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tonecompare "github.com/bigsdawg-2k/tone-comparator"
	"github.com/bigsdawg-2k/tone-comparator/internal/config"
)

func main() {
	log.SetFlags(0)

	cfgPath := flag.String("config", "config.csv", "path to key:value configuration file")
	play := flag.Bool("play", false, "play each source while stepping")
	writeDir := flag.String("write", "", "directory to write sources as WAV files")
	verbose := flag.Bool("verbose", false, "log per-source analysis detail")
	flag.Parse()

	cfg, err := config.ParseFile(*cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("config: %v", err)
		}
		log.Printf("config %s not found, using defaults", *cfgPath)
		cfg = config.File{}
	}

	sources, targets, err := buildSources(cfg)
	if err != nil {
		log.Fatalf("sources: %v", err)
	}
	if len(sources) == 0 {
		log.Fatal("no sources configured: set FREQS and/or FILES in the config file")
	}

	results := make([]sourceResult, 0, len(sources))
	for _, src := range sources {
		res, err := analyzeSource(src, targets, *verbose)
		if err != nil {
			log.Printf("skipping %s: %v", src.name, err)
			continue
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		log.Fatal("no sources survived analysis")
	}

	printSummary(results, targets)

	var pl *player
	if *play {
		pl, err = newPlayer(results[0].rate)
		if err != nil {
			log.Printf("playback disabled: %v", err)
			pl = nil
		}
	}

	stepThrough(results, pl, *writeDir)
}

// stepThrough presents one source at a time on stdin commands.
func stepThrough(results []sourceResult, pl *player, writeDir string) {
	scanner := bufio.NewScanner(os.Stdin)
	i := 0
	for {
		res := results[i]
		fmt.Printf("\n[%d/%d] %s: estimated %.2f Hz (time-domain %.2f Hz, %d transitions)\n",
			i+1, len(results), res.name, res.spectralHz, res.timeDomainHz, res.stats.Count)
		fmt.Print("command ([Enter]=next, p=play, w=write, q=quit): ")

		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "":
			i = (i + 1) % len(results)
		case "p":
			if pl == nil {
				fmt.Println("playback not available (run with -play)")
				continue
			}
			if res.rate != pl.sampleRate {
				fmt.Printf("cannot play %s: rate %d Hz differs from the audio context's %d Hz\n",
					res.name, res.rate, pl.sampleRate)
				continue
			}
			if err := pl.play(res.samples); err != nil {
				log.Printf("playback: %v", err)
			}
		case "w":
			if writeDir == "" {
				fmt.Println("no output directory (run with -write DIR)")
				continue
			}
			path := filepath.Join(writeDir, fmt.Sprintf("source_%02d.wav", i+1))
			if err := tonecompare.WriteWAV(path, res.samples, res.rate); err != nil {
				log.Printf("write: %v", err)
				continue
			}
			fmt.Printf("wrote %s\n", path)
		case "q":
			return
		default:
			fmt.Println("unknown command")
		}
	}
}
