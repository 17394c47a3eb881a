package juan

import "time"

// Named sound events emitted to the audio collaborator.
const (
	SoundJump      = "jump"
	SoundBreak     = "break"
	SoundGameOver  = "gameOver"
	SoundSuperJump = "superJump"
)

// Persistence keys handed to the score keeper at game over.
const (
	KeyLastScore = "LastScore"
	KeyHighScore = "HighScore"
)

// Session holds all mutable per-game state that subsystems read and write.
// A fresh Session is created for every game.
type Session struct {
	Started   bool
	Ended     bool
	Clock     time.Duration // simulated time since the session began
	Ticks     int           // fixed ticks advanced via Tick
	SuperJump SuperJump
	Score     ScoreTracker
	Contact   ContactState // last contact reaction

	sounds []string
}

// Tick advances the clock by one fixed tick at rate ticks per second.
// The clock is computed from the tick count, so 150 ticks at 60 Hz is
// exactly 2.5s. Ended sessions ignore the call.
func (s *Session) Tick(rate int) {
	if s.Ended || rate <= 0 {
		return
	}
	s.Ticks++
	s.setClock(time.Duration(s.Ticks) * time.Second / time.Duration(rate))
}

// setClock moves the clock to now and expires the super jump.
func (s *Session) setClock(now time.Duration) {
	if s.Ended {
		return
	}
	s.Clock = now
	if s.SuperJump.Expire(s.Clock) {
		s.Contact = ContactIdle
	}
}

// emit queues a sound event for this tick.
func (s *Session) emit(sound string) {
	s.sounds = append(s.sounds, sound)
}

// drainSounds returns and clears the queued sound events.
func (s *Session) drainSounds() []string {
	if len(s.sounds) == 0 {
		return nil
	}
	out := s.sounds
	s.sounds = nil
	return out
}
