package game

// EventKind classifies what happened during a simulation step.
type EventKind int

const (
	PaddleHit EventKind = iota
	WallBounce
	Miss
	RoundLost
)

func (k EventKind) String() string {
	switch k {
	case PaddleHit:
		return "paddle-hit"
	case WallBounce:
		return "wall-bounce"
	case Miss:
		return "miss"
	case RoundLost:
		return "round-lost"
	default:
		return "unknown"
	}
}

// Edge names a playfield boundary.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Cue is a sound the frontend should play in response to an event.
type Cue int

const (
	CueNone Cue = iota
	CueBeep
	CueBoop
	CueBop
	CueMiss
)

func (c Cue) String() string {
	switch c {
	case CueBeep:
		return "beep"
	case CueBoop:
		return "boop"
	case CueBop:
		return "bop"
	case CueMiss:
		return "miss"
	default:
		return "none"
	}
}

// Event is emitted by Evaluate for the external layer to act on.
type Event struct {
	Kind EventKind
	Edge Edge
}

// Cue returns the sound associated with the event.
func (e Event) Cue() Cue {
	switch e.Kind {
	case PaddleHit:
		return CueBeep
	case Miss:
		return CueMiss
	case WallBounce:
		if e.Edge == EdgeTop {
			return CueBoop
		}
		return CueBop
	default:
		return CueNone
	}
}
