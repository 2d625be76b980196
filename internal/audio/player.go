//go:build speaker

package audio

import (
	"fmt"
	"log"
	"time"

	"bat-pong/internal/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes cues onto the system speaker.
type Player struct {
	volume float64
	mixer  *beep.Mixer
	gate   *cueGate
}

// NewPlayer opens the speaker. Frontends treat an error as "no sound" and
// keep running.
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &Player{volume: volume, mixer: &beep.Mixer{}, gate: newCueGate()}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the cue of every event unless the same cue is still sounding.
// Synthesis failures are logged and skipped.
func (p *Player) Play(events []game.Event) {
	if p == nil {
		return
	}
	now := time.Now()
	for _, ev := range events {
		c := ev.Cue()
		if !p.gate.allow(c, now) {
			continue
		}
		s, err := Tone(c, p.volume)
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		if s == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
