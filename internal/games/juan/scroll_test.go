package juan

import (
	"math"
	"testing"
)

func TestScrollDeltaGate(t *testing.T) {
	cfg := testConfig()
	e := NewScrollEngine(cfg.Scroll, cfg.World.Height)
	mid := cfg.World.Height / 2

	tests := []struct {
		name     string
		y, vy    float64
		expected float64
	}{
		{"at rest above middle", mid + 100, 0, 0},
		{"exactly at middle", mid, 500, 0},
		{"below middle", mid - 1, 500, 0},
		{"falling above middle", mid + 100, -200, 0},
		{"rising above middle", mid + 1, 500, 10},
		{"slow climb", mid + 50, 25, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Delta(tc.y, tc.vy, false, 0); got != tc.expected {
				t.Errorf("Delta(%v, %v) = %v, expected %v", tc.y, tc.vy, got, tc.expected)
			}
		})
	}
}

func TestScrollDeltaSuperJumpIgnoresGate(t *testing.T) {
	cfg := testConfig()
	e := NewScrollEngine(cfg.Scroll, cfg.World.Height)

	// Low and falling, but boosted anyway
	if got := e.Delta(0, -10, true, 0); got != cfg.Scroll.SuperJumpBase {
		t.Errorf("Delta() = %v, expected %v", got, cfg.Scroll.SuperJumpBase)
	}
}

func TestScrollStepDecaysDuringSuperJump(t *testing.T) {
	cfg := testConfig()
	e := NewScrollEngine(cfg.Scroll, cfg.World.Height)
	sj := SuperJump{Active: true}

	for i := 0; i < 3; i++ {
		want := cfg.Scroll.SuperJumpBase - float64(i)*cfg.Scroll.SuperJumpStep
		got := e.Step(0, 0, &sj)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("step %d: delta = %v, expected %v", i, got, want)
		}
	}
	if math.Abs(sj.Elapsed-3*cfg.Scroll.SuperJumpStep) > 1e-9 {
		t.Errorf("elapsed = %v, expected %v", sj.Elapsed, 3*cfg.Scroll.SuperJumpStep)
	}

	idle := SuperJump{}
	e.Step(cfg.World.Height, 100, &idle)
	if idle.Elapsed != 0 {
		t.Error("elapsed must not grow outside a super jump")
	}
}

func TestApplyShiftsWholePool(t *testing.T) {
	platforms := []Platform{normalPlatform(10, 100), normalPlatform(20, 200)}
	platforms[1].Active = false
	floor := normalPlatform(195, 10)

	Apply(4, platforms, &floor)

	if platforms[0].Pos.Y != 96 || platforms[1].Pos.Y != 196 {
		t.Errorf("platforms not shifted: %v, %v", platforms[0].Pos.Y, platforms[1].Pos.Y)
	}
	if floor.Pos.Y != 6 {
		t.Errorf("floor y = %v, expected 6", floor.Pos.Y)
	}
}
