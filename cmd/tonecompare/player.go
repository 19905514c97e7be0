package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/bigsdawg-2k/tone-comparator/internal/wavio"
)

// playPollInterval is how often playback completion is polled.
const playPollInterval = 10 * time.Millisecond

// player owns the process-wide audio context. oto permits only one context
// per process, so all sources must share the first source's sample rate.
type player struct {
	ctx        *oto.Context
	sampleRate int
}

// newPlayer opens a mono 16-bit audio context at sampleRate.
func newPlayer(sampleRate int) (*player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open audio context: %w", err)
	}
	<-ready

	return &player{ctx: ctx, sampleRate: sampleRate}, nil
}

// play quantizes samples to 16-bit PCM and plays them to completion.
func (p *player) play(samples []float64) error {
	pcm := wavio.Quantize16(samples)
	buf := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}

	pl := p.ctx.NewPlayer(bytes.NewReader(buf))
	pl.Play()
	for pl.IsPlaying() {
		time.Sleep(playPollInterval)
	}
	return pl.Close()
}
