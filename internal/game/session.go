package game

// State is the session-level run state.
type State int

const (
	Paused State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// session tracks score and lives across rounds. over is set when the lives ran
// out; the counters are reinitialised when the next round starts so the final
// score stays visible while paused.
type session struct {
	score int
	lives int
	state State
	over  bool
}

func newSession() session {
	return session{lives: StartingLives, state: Paused}
}

func (s *session) start() bool {
	if s.state == Running {
		return false
	}
	if s.over {
		s.score = 0
		s.lives = StartingLives
		s.over = false
	}
	s.state = Running
	return true
}

// loseLife decrements lives and reports whether the round is lost.
func (s *session) loseLife() bool {
	s.lives--
	if s.lives > 0 {
		return false
	}
	s.lives = 0
	s.over = true
	s.state = Paused
	return true
}
