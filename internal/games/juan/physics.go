package juan

import (
	"github.com/vovakirdan/juan-jump/internal/config"
	"github.com/vovakirdan/juan-jump/internal/core"
)

// Integrate applies gravity (m/s^2) for dt seconds, clamps the velocity and
// moves the ball.
func Integrate(b *Ball, gravity core.Vec2, dt float64, cfg config.JuanPhysics) {
	b.Vel = b.Vel.Add(gravity.Scale(cfg.PointsPerMeter * dt))
	b.ClampVelocity(cfg.MaxVelocityX, cfg.MaxVelocityY)
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// beginContact updates p's touching flag and reports whether the ball has
// just started overlapping it. Only active, collidable platforms take part.
func beginContact(b *Ball, p *Platform) bool {
	overlapping := p.Active && p.Collidable && p.Box().CircleOverlaps(b.Pos, b.Radius)
	began := overlapping && !p.touching
	p.touching = overlapping
	return began
}
