package game

import "bat-pong/internal/core"

// Simulation owns the paddle and ball and resolves their collisions with each
// other and with the playfield boundaries. It is driven by a single frame
// loop; frontends only read geometry through the accessors.
type Simulation struct {
	field   Playfield
	paddle  *Paddle
	ball    *Ball
	sess    session
	lastFPS float64
	events  []Event
}

// New validates cfg and builds a paused simulation ready for its first round.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bounce, err := LookupBounce(cfg.Bounce)
	if err != nil {
		return nil, err
	}
	field := Playfield{W: cfg.Width, H: cfg.Height}
	return &Simulation{
		field:  field,
		paddle: NewPaddle(field),
		ball:   NewBall(field, bounce),
		sess:   newSession(),
		events: make([]Event, 0, 8),
	}, nil
}

// NewGame repositions the ball, reinitialises score and lives and pauses. The
// paddle keeps its position.
func (s *Simulation) NewGame() {
	s.ball.Reset(s.field.W, s.field.H)
	s.sess = newSession()
}

// Input reacts to a fresh press from the player. Any directional press while
// paused starts the next round. It reports whether the session started.
func (s *Simulation) Input(m Movement) bool {
	if m == Stopped {
		return false
	}
	return s.sess.start()
}

// Step runs one frame: both entities advance by one fps-normalised step and
// collisions are evaluated. Nothing happens while the session is paused.
// The returned slice is reused by the next call.
func (s *Simulation) Step(fps float64, m Movement) []Event {
	if s.sess.state != Running {
		return nil
	}
	s.lastFPS = fps
	s.paddle.SetMovement(m)
	s.paddle.Advance(fps)
	s.ball.Advance(fps)
	return s.Evaluate()
}

// Evaluate resolves collisions in a fixed order: paddle, bottom, top, left,
// right. The checks are independent; a ball in a corner triggers both of its
// walls in the same call.
func (s *Simulation) Evaluate() []Event {
	s.events = s.events[:0]

	if s.paddle.Rect().Intersects(s.ball.Rect()) {
		s.ball.BounceOffPaddle(s.paddle.Rect())
		s.ball.IncreaseSpeed()
		s.sess.score++
		s.events = append(s.events, Event{Kind: PaddleHit})
	}

	if s.ball.Rect().Bottom > s.field.H {
		s.ball.ReverseVelocityY()
		s.events = append(s.events, Event{Kind: Miss, Edge: EdgeBottom})
		if s.sess.loseLife() {
			s.ball.Reset(s.field.W, s.field.H)
			s.events = append(s.events, Event{Kind: RoundLost, Edge: EdgeBottom})
		}
	}

	if s.ball.Rect().Top < 0 {
		s.ball.ReverseVelocityY()
		s.events = append(s.events, Event{Kind: WallBounce, Edge: EdgeTop})
	}

	if s.ball.Rect().Left < 0 {
		s.ball.ReverseVelocityX()
		s.events = append(s.events, Event{Kind: WallBounce, Edge: EdgeLeft})
	}

	if s.ball.Rect().Right > s.field.W {
		s.ball.ReverseVelocityX()
		s.events = append(s.events, Event{Kind: WallBounce, Edge: EdgeRight})
	}

	return s.events
}

// Size returns the playfield dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.field.W, H: s.field.H} }

// PaddleRect returns the paddle geometry for rendering.
func (s *Simulation) PaddleRect() core.Rect { return s.paddle.Rect() }

// BallRect returns the ball geometry for rendering.
func (s *Simulation) BallRect() core.Rect { return s.ball.Rect() }

// BallSpeed returns the ball's speed scalar.
func (s *Simulation) BallSpeed() float64 { return s.ball.Speed() }

// Score returns the paddle hits in the current round.
func (s *Simulation) Score() int { return s.sess.score }

// Lives returns the remaining lives.
func (s *Simulation) Lives() int { return s.sess.lives }

// State returns whether the session is running or paused.
func (s *Simulation) State() State { return s.sess.state }
