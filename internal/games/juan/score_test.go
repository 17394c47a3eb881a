package juan

import "testing"

func TestScoreTrajectory(t *testing.T) {
	var s ScoreTracker

	ys := []float64{20, 50, 30, 80}
	scores := []int{5, 35, 15, 65}
	best := []int{5, 35, 35, 65}
	rising := []bool{true, true, false, true}

	for i, y := range ys {
		got := s.Update(y, 15, 10, 20)
		if got != scores[i] || s.current != scores[i] {
			t.Errorf("tick %d: score = %d, expected %d", i, got, scores[i])
		}
		if s.Best() != best[i] {
			t.Errorf("tick %d: best = %d, expected %d", i, s.Best(), best[i])
		}
		if s.Rising() != rising[i] {
			t.Errorf("tick %d: rising = %v, expected %v", i, s.Rising(), rising[i])
		}
	}
}

func TestScoreNeverNegative(t *testing.T) {
	var s ScoreTracker
	if got := s.Update(-100, 15, 10, 20); got != 0 {
		t.Errorf("score = %d, expected 0", got)
	}
	if s.Rising() {
		t.Error("flat score is not rising")
	}
}

func TestScoreDisplay(t *testing.T) {
	tests := []struct {
		y        float64
		expected string
	}{
		{15, "Score: 0"},
		{15 + 999, "Score: 999"},
		{15 + 1234, "Score: 1,234"},
		{15 + 1234567, "Score: 1,234,567"},
	}
	for _, tc := range tests {
		var s ScoreTracker
		s.Update(tc.y, 15, 10, 20)
		if got := s.Display(); got != tc.expected {
			t.Errorf("Display() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestScoreReset(t *testing.T) {
	var s ScoreTracker
	s.Update(500, 15, 10, 20)
	s.Reset()
	if s.current != 0 || s.Best() != 0 || s.Rising() {
		t.Errorf("Reset() left %+v", s)
	}
}
