package juan

import (
	"github.com/vovakirdan/juan-jump/internal/config"
	"github.com/vovakirdan/juan-jump/internal/core"
)

// Rand is the subset of *rand.Rand the recycler draws from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Recycler respawns platforms that scrolled off the bottom of the screen
// at the top, with a new position and a freshly drawn category.
type Recycler struct {
	rng       Rand
	world     config.JuanWorld
	platforms config.JuanPlatforms
	odds      config.JuanRecycle
}

// NewRecycler creates a recycler drawing from rng.
func NewRecycler(rng Rand, cfg config.JuanConfig) *Recycler {
	return &Recycler{
		rng:       rng,
		world:     cfg.World,
		platforms: cfg.Platforms,
		odds:      cfg.Recycle,
	}
}

// oneIn draws a uniform integer in [1, n] and reports whether it was 1.
// Out-of-range draws from a misbehaving source are clamped.
func (r *Recycler) oneIn(n int) bool {
	if n <= 1 {
		return true
	}
	v := r.rng.Intn(n) + 1
	if v < 1 {
		v = 1
	} else if v > n {
		v = n
	}
	return v == 1
}

// PickCategory runs the ordered draws; the first hit wins.
func (r *Recycler) PickCategory() Category {
	switch {
	case r.oneIn(r.odds.PowerUpOdds):
		return CategoryPowerUp
	case r.oneIn(r.odds.MovingOdds):
		return CategoryMoving
	case r.oneIn(r.odds.BreakableOdds):
		return CategoryBreakable
	default:
		return CategoryNormal
	}
}

// Recycle re-skins p and moves it above the top of the screen.
// Callers invoke it once p.BelowScreen() is true; the overshoot below the
// bottom edge is carried over as the same overshoot above the top edge.
// Platforms without a positive height are left alone.
func (r *Recycler) Recycle(p *Platform) {
	width := r.world.Width
	if width <= 0 || p.Size.H <= 0 {
		return
	}
	oldY := p.Pos.Y
	priorX := p.Pos.X

	p.stopAnimations()
	p.Active = true
	p.Collidable = true
	p.touching = false

	p.Category = r.PickCategory()
	p.Size = SizeFor(p.Category, r.platforms)

	if p.Category == CategoryMoving {
		if priorX < width/2 {
			p.Facing = FacingLeft
			p.startOscillation(0, 1)
		} else {
			p.Facing = FacingRight
			p.startOscillation(width, -1)
		}
	} else {
		p.Pos.X = core.ClampF(r.rng.Float64(), 0, 1) * width
		p.Facing = facingAt(p.Pos.X, width)
	}

	p.Pos.Y = r.world.Height + p.Size.H/2 + oldY
}

// facingAt picks the sprite variant for a horizontal position.
func facingAt(x, width float64) Facing {
	if x < width/2 {
		return FacingLeft
	}
	return FacingRight
}
