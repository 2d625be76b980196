package audio

import (
	"time"

	"bat-pong/internal/game"
)

// cueGate drops a cue while a previous instance of the same cue is still
// sounding, so a ball grinding along a wall does not stack tones.
type cueGate struct {
	until map[game.Cue]time.Time
}

func newCueGate() *cueGate {
	return &cueGate{until: make(map[game.Cue]time.Time)}
}

// allow reports whether c may start at now and, if so, records it as playing
// for CueDuration(c).
func (g *cueGate) allow(c game.Cue, now time.Time) bool {
	if c == game.CueNone {
		return false
	}
	if now.Before(g.until[c]) {
		return false
	}
	g.until[c] = now.Add(CueDuration(c))
	return true
}
