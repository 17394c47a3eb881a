package tui

import "math"

// TiltStick emulates a device accelerometer on a keyboard. Each arrow key
// press tips the stick toward one side and it drifts back to level every
// tick, so holding a key (auto-repeat) keeps the device tilted.
type TiltStick struct {
	x     float64
	Step  float64 // tilt added per key press
	Decay float64 // fraction kept per tick
}

// NewTiltStick returns a level stick with the default feel.
func NewTiltStick() TiltStick {
	return TiltStick{Step: 0.2, Decay: 0.92}
}

// Nudge tips the stick by one step; dir is -1 for left, +1 for right.
// Pressing against the current tilt first levels the stick.
func (t *TiltStick) Nudge(dir float64) {
	if t.x*dir < 0 {
		t.x = 0
	}
	t.x = math.Max(-1, math.Min(1, t.x+dir*t.Step))
}

// Sample returns the horizontal acceleration sample in g.
func (t *TiltStick) Sample() float64 {
	return t.x
}

// Tick lets the stick drift back toward level.
func (t *TiltStick) Tick() {
	t.x *= t.Decay
	if math.Abs(t.x) < 0.01 {
		t.x = 0
	}
}

// Level resets the stick.
func (t *TiltStick) Level() {
	t.x = 0
}
