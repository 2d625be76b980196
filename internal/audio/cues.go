package audio

import (
	"fmt"
	"math"
	"time"

	"bat-pong/internal/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the output rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// note is one segment of a cue.
type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[game.Cue][]note{
	game.CueBeep: {{freq: 880, duration: 60 * time.Millisecond}},
	game.CueBoop: {{freq: 440, duration: 80 * time.Millisecond}},
	game.CueBop:  {{freq: 660, duration: 60 * time.Millisecond}},
	game.CueMiss: {
		{freq: 330, duration: 120 * time.Millisecond},
		{freq: 220, duration: 200 * time.Millisecond},
	},
}

// CueDuration returns the total length of a cue, zero for CueNone.
func CueDuration(c game.Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}

// Tone synthesises the streamer for a cue at the given volume in [0, 1].
// CueNone yields a nil streamer.
func Tone(c game.Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %s at %gHz: %w", c, n.freq, err)
		}
		parts = append(parts, beep.Take(SampleRate.N(n.duration), sine))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
