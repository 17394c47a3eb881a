package juan

import "time"

// SuperJump is the temporary power-up state. While active, gravity is
// replaced by a weak pull and the world scrolls at an elevated speed.
type SuperJump struct {
	Active    bool
	Elapsed   float64       // grows every scrolled tick, slowing the boosted scroll
	ExpiresAt time.Duration // on the session's simulated clock
}

// Trigger activates the super jump until now+d. Re-triggering restarts the
// timer; the last trigger wins.
func (s *SuperJump) Trigger(now, d time.Duration) {
	s.Active = true
	s.ExpiresAt = now + d
}

// Expire clears the state once now has reached the expiry time.
// Reports whether it was cleared by this call. Safe to call at any time.
func (s *SuperJump) Expire(now time.Duration) bool {
	if !s.Active || now < s.ExpiresAt {
		return false
	}
	s.Reset()
	return true
}

// Reset clears the flag and the scroll counter.
func (s *SuperJump) Reset() {
	*s = SuperJump{}
}
