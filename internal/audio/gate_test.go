package audio

import (
	"testing"
	"time"

	"bat-pong/internal/game"
)

func TestCueGateSuppressesOverlap(t *testing.T) {
	g := newCueGate()
	start := time.Unix(100, 0)

	if !g.allow(game.CueBop, start) {
		t.Fatal("first bop should play")
	}
	if g.allow(game.CueBop, start.Add(CueDuration(game.CueBop)/2)) {
		t.Fatal("second bop while the first sounds should be dropped")
	}
	if !g.allow(game.CueBeep, start.Add(time.Millisecond)) {
		t.Fatal("a different cue should not be gated")
	}
	if !g.allow(game.CueBop, start.Add(CueDuration(game.CueBop))) {
		t.Fatal("bop after the first finished should play")
	}
	if g.allow(game.CueNone, start) {
		t.Fatal("CueNone should never play")
	}
}
