package app

import "bat-pong/internal/game"

// MovementAt maps a press at screen x to a paddle direction: the right half of
// the screen moves right, everything else moves left.
func MovementAt(x, width int) game.Movement {
	if x > width/2 {
		return game.Right
	}
	return game.Left
}

// KeyMovement resolves held left/right keys into one intent. Holding both
// cancels out.
func KeyMovement(left, right bool) game.Movement {
	switch {
	case left && !right:
		return game.Left
	case right && !left:
		return game.Right
	default:
		return game.Stopped
	}
}
