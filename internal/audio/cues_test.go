package audio

import (
	"testing"
	"time"

	"bat-pong/internal/game"
)

func drain(t *testing.T, c game.Cue, volume float64) (samples int, peak float64) {
	t.Helper()
	s, err := Tone(c, volume)
	if err != nil {
		t.Fatalf("Tone(%v): %v", c, err)
	}
	if s == nil {
		t.Fatalf("Tone(%v) returned nil streamer", c)
	}
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		samples += n
		if !ok {
			break
		}
		if samples > SampleRate.N(5*time.Second) {
			t.Fatalf("Tone(%v) did not terminate", c)
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Tone(%v) stream error: %v", c, err)
	}
	return samples, peak
}

func TestToneLengths(t *testing.T) {
	cases := []struct {
		cue  game.Cue
		want int
	}{
		{game.CueBeep, SampleRate.N(60 * time.Millisecond)},
		{game.CueBoop, SampleRate.N(80 * time.Millisecond)},
		{game.CueBop, SampleRate.N(60 * time.Millisecond)},
		{game.CueMiss, SampleRate.N(120*time.Millisecond) + SampleRate.N(200*time.Millisecond)},
	}
	for _, tc := range cases {
		got, _ := drain(t, tc.cue, 1)
		if got != tc.want {
			t.Fatalf("%v: streamed %d samples, want %d", tc.cue, got, tc.want)
		}
	}
}

func TestToneVolume(t *testing.T) {
	_, loud := drain(t, game.CueBeep, 1)
	_, quiet := drain(t, game.CueBeep, 0.25)
	_, silent := drain(t, game.CueBeep, 0)

	if loud <= 0 || loud > 1.0001 {
		t.Fatalf("full volume peak = %f, want (0,1]", loud)
	}
	if quiet >= loud {
		t.Fatalf("quarter volume peak %f should be below full %f", quiet, loud)
	}
	if silent != 0 {
		t.Fatalf("zero volume peak = %f, want silence", silent)
	}
}

func TestToneNone(t *testing.T) {
	s, err := Tone(game.CueNone, 1)
	if err != nil || s != nil {
		t.Fatalf("Tone(CueNone) = %v, %v; want nil, nil", s, err)
	}
	if d := CueDuration(game.CueNone); d != 0 {
		t.Fatalf("CueDuration(CueNone) = %v, want 0", d)
	}
	if d := CueDuration(game.CueMiss); d != 320*time.Millisecond {
		t.Fatalf("CueDuration(CueMiss) = %v, want 320ms", d)
	}
}
