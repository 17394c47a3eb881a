package core

import "testing"

func TestBoxCircleOverlaps(t *testing.T) {
	box := Box{Center: Vec2{X: 100, Y: 50}, W: 60, H: 20}

	tests := []struct {
		name     string
		c        Vec2
		r        float64
		expected bool
	}{
		{"centered", Vec2{X: 100, Y: 50}, 5, true},
		{"resting on top edge", Vec2{X: 100, Y: 75}, 15, true},
		{"just above", Vec2{X: 100, Y: 75.5}, 15, false},
		{"left of box", Vec2{X: 50, Y: 50}, 15, false},
		{"touching left edge", Vec2{X: 55, Y: 50}, 15, true},
		{"corner miss", Vec2{X: 142, Y: 72}, 15, false},
		{"corner hit", Vec2{X: 135, Y: 65}, 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.CircleOverlaps(tc.c, tc.r); got != tc.expected {
				t.Errorf("CircleOverlaps(%v, %v) = %v, expected %v", tc.c, tc.r, got, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -4}).Scale(2)
	if v.X != 8 || v.Y != -4 {
		t.Errorf("Add/Scale = %+v, expected {8 -4}", v)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-9.8, -9.8, 9.8, -9.8},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
