package juan

import (
	"github.com/vovakirdan/juan-jump/internal/core"
)

// Ball is the player's ball. Y grows upward.
type Ball struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Rotation float64 // radians, cosmetic
}

// Diameter returns the ball's width.
func (b *Ball) Diameter() float64 {
	return 2 * b.Radius
}

// Wrap moves a ball that has fully left one side of the screen to the
// opposite edge. Reports whether the ball was moved.
func (b *Ball) Wrap(width float64) bool {
	d := b.Diameter()
	switch {
	case b.Pos.X-d >= width:
		b.Pos.X = 0 - d/2 + 1
	case b.Pos.X+d <= 0:
		b.Pos.X = width + d/2 - 1
	default:
		return false
	}
	return true
}

// ClampVelocity limits each velocity component to ±maxX and ±maxY.
// Non-positive limits disable clamping on that axis.
func (b *Ball) ClampVelocity(maxX, maxY float64) {
	if maxX > 0 {
		b.Vel.X = core.ClampF(b.Vel.X, -maxX, maxX)
	}
	if maxY > 0 {
		b.Vel.Y = core.ClampF(b.Vel.Y, -maxY, maxY)
	}
}

// FellOff reports whether the ball is entirely below the bottom edge.
func (b *Ball) FellOff() bool {
	return b.Pos.Y+b.Diameter() < 0
}
