//go:build !speaker

package audio

import (
	"errors"

	"bat-pong/internal/game"
)

// ErrUnavailable is returned when the binary was built without speaker support.
var ErrUnavailable = errors.New("audio requires building with the 'speaker' tag")

// Player is a placeholder that drops every cue.
type Player struct{}

// NewPlayer reports that no audio device is compiled in.
func NewPlayer(float64) (*Player, error) { return nil, ErrUnavailable }

// Play is a no-op in builds without the speaker tag.
func (p *Player) Play([]game.Event) {}

// Close is a no-op in builds without the speaker tag.
func (p *Player) Close() {}
