package juan

import (
	"github.com/dustin/go-humanize"
)

// ScoreTracker derives the score from the ball's height above the floor.
// The per-tick score may drop while the ball falls; Best never does.
type ScoreTracker struct {
	current int
	best    int
	rising  bool
}

// Update recomputes the score for one tick and returns it.
func (s *ScoreTracker) Update(ballY, ballRadius, floorY, floorHeight float64) int {
	prev := s.current
	score := int(ballY - ballRadius - (floorY - floorHeight/2))
	if score < 0 {
		score = 0
	}
	s.current = score
	s.rising = score > prev
	if score > s.best {
		s.best = score
	}
	return score
}

// Best returns the running maximum for the session.
func (s *ScoreTracker) Best() int {
	return s.best
}

// Rising reports whether the last tick's score exceeded the one before it.
func (s *ScoreTracker) Rising() bool {
	return s.rising
}

// Display returns the HUD label, e.g. "Score: 1,234".
func (s *ScoreTracker) Display() string {
	return "Score: " + humanize.Comma(int64(s.current))
}

// Reset zeroes the tracker for a new session.
func (s *ScoreTracker) Reset() {
	*s = ScoreTracker{}
}
