package juan

import (
	"time"

	"github.com/vovakirdan/juan-jump/internal/config"
)

// ContactState is the reaction taken on the most recent contact.
type ContactState int

const (
	ContactIdle ContactState = iota
	ContactBouncing
	ContactBreaking
	ContactSuperJumping
)

// String returns the state name.
func (s ContactState) String() string {
	switch s {
	case ContactIdle:
		return "Idle"
	case ContactBouncing:
		return "Bouncing"
	case ContactBreaking:
		return "Breaking"
	case ContactSuperJumping:
		return "SuperJumping"
	default:
		return "Unknown"
	}
}

// reaction handles one contact and returns the resulting state.
type reaction func(r *ContactResolver, s *Session, b *Ball, p *Platform) ContactState

// reactions maps each platform category to its contact behavior.
var reactions = map[Category]reaction{
	CategoryNormal:    bounce,
	CategoryMoving:    bounce,
	CategoryBreakable: breakPlatform,
	CategoryPowerUp:   superJump,
}

// ContactResolver dispatches ball/platform contacts to category reactions.
type ContactResolver struct {
	cfg    config.JuanContact
	height float64
}

// NewContactResolver creates a resolver for a world of the given height.
func NewContactResolver(cfg config.JuanContact, height float64) ContactResolver {
	return ContactResolver{cfg: cfg, height: height}
}

// Resolve reacts to the ball touching p. Contacts while the ball is rising
// or resting (vy >= 0) are ignored and leave the state unchanged.
func (r *ContactResolver) Resolve(s *Session, b *Ball, p *Platform) ContactState {
	if b.Vel.Y >= 0 || !p.Collidable {
		return s.Contact
	}
	react, ok := reactions[p.Category]
	if !ok {
		return s.Contact
	}
	s.Contact = react(r, s, b, p)
	return s.Contact
}

// BounceVelocity returns the upward impulse for a ball at height y.
func (r *ContactResolver) BounceVelocity(y float64) float64 {
	return r.height*r.cfg.BounceFactor - y
}

func bounce(r *ContactResolver, s *Session, b *Ball, _ *Platform) ContactState {
	s.emit(SoundJump)
	b.Vel.Y = r.BounceVelocity(b.Pos.Y)
	return ContactBouncing
}

func breakPlatform(r *ContactResolver, s *Session, b *Ball, p *Platform) ContactState {
	s.emit(SoundJump)
	s.emit(SoundBreak)
	b.Vel.Y = r.BounceVelocity(b.Pos.Y)
	p.startFade()
	return ContactBreaking
}

func superJump(r *ContactResolver, s *Session, b *Ball, _ *Platform) ContactState {
	s.emit(SoundSuperJump)
	b.Vel.Y = r.cfg.SuperJumpVelocity
	s.SuperJump.Trigger(s.Clock, seconds(r.cfg.SuperJumpDuration))
	return ContactSuperJumping
}

// seconds converts a float number of seconds to a Duration.
func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
