package juan

import (
	"math"

	"github.com/vovakirdan/juan-jump/internal/config"
	"github.com/vovakirdan/juan-jump/internal/core"
)

// Category is the behavioral class of a platform.
// It decides the contact reaction and what happens to the platform after use.
type Category int

const (
	CategoryNormal    Category = iota // Static platform, bounces the ball
	CategoryBreakable                 // Bounces once, then fades out
	CategoryMoving                    // Sweeps across the screen, bounces the ball
	CategoryPowerUp                   // Triggers a super jump
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "Normal"
	case CategoryBreakable:
		return "Breakable"
	case CategoryMoving:
		return "Moving"
	case CategoryPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// Facing selects the left or right sprite variant of a platform.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// String returns "Left" or "Right".
func (f Facing) String() string {
	if f == FacingRight {
		return "Right"
	}
	return "Left"
}

// TextureID returns the sprite name for a category and facing.
func TextureID(c Category, f Facing) string {
	switch c {
	case CategoryPowerUp:
		return "tweet"
	case CategoryMoving:
		return "strapOfDollars" + f.String()
	case CategoryBreakable:
		return "dollarWithHole" + f.String()
	default:
		return "dollar" + f.String()
	}
}

// SizeFor returns the sprite size configured for a category.
func SizeFor(c Category, cfg config.JuanPlatforms) config.Size {
	switch c {
	case CategoryBreakable:
		return cfg.Breakable
	case CategoryMoving:
		return cfg.Moving
	case CategoryPowerUp:
		return cfg.PowerUp
	default:
		return cfg.Normal
	}
}

// oscillation is the perpetual back-and-forth sweep of a moving platform.
// It is advanced by the tick loop and cancelled by zeroing it.
type oscillation struct {
	running   bool
	originX   float64 // edge the sweep starts from
	direction float64 // +1 sweeps right first, -1 sweeps left first
	elapsed   float64
}

// offset returns the triangle-wave displacement for the current phase.
func (o oscillation) offset(width, period float64) float64 {
	cycle := 2 * period
	t := math.Mod(o.elapsed, cycle)
	tri := t / period
	if t > period {
		tri = (cycle - t) / period
	}
	return o.direction * width * tri
}

// fade tracks a breakable platform fading out after contact.
type fade struct {
	running bool
	elapsed float64
}

// Platform is one pooled platform. Pools are created once per level and
// platforms are recycled rather than reallocated.
type Platform struct {
	Pos        core.Vec2 // Center position
	Size       config.Size
	Category   Category
	Facing     Facing
	Active     bool    // Inactive platforms are hidden until recycled
	Collidable bool    // Cleared once a breakable platform has been used
	Alpha      float64 // 1 = opaque, 0 = invisible

	osc      oscillation
	fade     fade
	touching bool // ball overlapped last tick; contacts fire on the rising edge
}

// Box returns the platform's collision box.
func (p *Platform) Box() core.Box {
	return core.Box{Center: p.Pos, W: p.Size.W, H: p.Size.H}
}

// Visible reports whether the renderer should draw the platform.
func (p *Platform) Visible() bool {
	return p.Active && p.Alpha > 0
}

// Moving reports whether the platform currently oscillates.
func (p *Platform) Moving() bool {
	return p.osc.running
}

// BelowScreen reports whether the platform has scrolled far enough to be recycled.
func (p *Platform) BelowScreen() bool {
	return p.Pos.Y < -p.Size.H/2
}

// stopAnimations cancels oscillation and fading and restores full opacity.
func (p *Platform) stopAnimations() {
	p.osc = oscillation{}
	p.fade = fade{}
	p.Alpha = 1
}

// startOscillation begins a sweep from the given edge.
func (p *Platform) startOscillation(originX, direction float64) {
	p.osc = oscillation{running: true, originX: originX, direction: direction}
	p.Pos.X = originX
}

// startFade disables contacts and begins fading the platform out.
func (p *Platform) startFade() {
	p.Collidable = false
	p.fade = fade{running: true}
}

// animate advances oscillation and fade by dt seconds.
func (p *Platform) animate(dt, width, period, fadeDuration float64) {
	if p.osc.running {
		p.osc.elapsed += dt
		p.Pos.X = p.osc.originX + p.osc.offset(width, period)
	}
	if p.fade.running {
		p.fade.elapsed += dt
		p.Alpha = core.ClampF(1-p.fade.elapsed/fadeDuration, 0, 1)
		if p.Alpha == 0 {
			p.fade.running = false
			p.Active = false
		}
	}
}
