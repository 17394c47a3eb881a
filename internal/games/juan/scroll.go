package juan

import (
	"github.com/vovakirdan/juan-jump/internal/config"
)

// ScrollEngine computes how far the world shifts down each tick to
// simulate the ball climbing while it stays near a fixed screen height.
type ScrollEngine struct {
	cfg    config.JuanScroll
	height float64
}

// NewScrollEngine creates a scroll engine for a world of the given height.
func NewScrollEngine(cfg config.JuanScroll, height float64) ScrollEngine {
	return ScrollEngine{cfg: cfg, height: height}
}

// Delta returns the downward shift for one tick.
//
// Outside a super jump the world only scrolls while the ball is above the
// middle of the screen and rising. During a super jump the height gate is
// lifted and the shift decays with the elapsed counter.
func (e ScrollEngine) Delta(ballY, ballVY float64, superJump bool, superJumpElapsed float64) float64 {
	if superJump {
		return e.cfg.SuperJumpBase - superJumpElapsed
	}
	if ballY <= e.height/2 || ballVY <= 0 || e.cfg.VelocityDivisor == 0 {
		return 0
	}
	return ballVY / e.cfg.VelocityDivisor
}

// Step computes this tick's delta and advances the super jump counter.
func (e ScrollEngine) Step(ballY, ballVY float64, sj *SuperJump) float64 {
	delta := e.Delta(ballY, ballVY, sj.Active, sj.Elapsed)
	if sj.Active {
		sj.Elapsed += e.cfg.SuperJumpStep
	}
	return delta
}

// Apply shifts every pooled platform and the floor down by delta.
func Apply(delta float64, platforms []Platform, floor *Platform) {
	if delta == 0 {
		return
	}
	for i := range platforms {
		platforms[i].Pos.Y -= delta
	}
	floor.Pos.Y -= delta
}
