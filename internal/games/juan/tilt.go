package juan

import (
	"github.com/vovakirdan/juan-jump/internal/config"
	"github.com/vovakirdan/juan-jump/internal/core"
)

// Steering converts a raw accelerometer sample into a clamped horizontal
// acceleration in m/s^2.
func Steering(sample core.Vec2, cfg config.JuanPhysics) float64 {
	return core.ClampF(sample.X*cfg.TiltGain, -cfg.Gravity, cfg.Gravity)
}

// Gravity returns the gravity vector for this tick. Before the first touch
// the world has no gravity at all.
func Gravity(steer float64, started, superJump bool, cfg config.JuanPhysics) core.Vec2 {
	if !started {
		return core.Vec2{}
	}
	pull := cfg.Gravity
	if superJump {
		pull = cfg.SuperJumpPull
	}
	return core.Vec2{X: steer, Y: -pull}
}
