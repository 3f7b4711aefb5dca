package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 10, true},
		{"inside", 12, 12, true},
		{"last cell", 14, 14, true},
		{"right edge is exclusive", 15, 12, false},
		{"bottom edge is exclusive", 12, 15, false},
		{"left of rect", 9, 12, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 20)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, expected 24", r.Bottom())
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v", got)
	}
	if got := V(0, 0).Dist(a); got != 5 {
		t.Errorf("Dist = %v", got)
	}
}

func TestVec2Unit(t *testing.T) {
	u := V(3, 4).Unit()
	if math.Abs(u.Len()-1) > 1e-12 {
		t.Errorf("|Unit| = %v, expected 1", u.Len())
	}
	if z := (Vec2{}).Unit(); !z.IsZero() {
		t.Errorf("zero.Unit() = %+v, expected zero", z)
	}
}

func TestVec2Angles(t *testing.T) {
	for _, angle := range []float64{0, 0.5, math.Pi / 2, 2, -2.5} {
		v := FromAngle(angle)
		if math.Abs(v.Len()-1) > 1e-12 {
			t.Errorf("FromAngle(%v) length = %v", angle, v.Len())
		}
		if math.Abs(v.Angle()-angle) > 1e-12 {
			t.Errorf("FromAngle(%v).Angle() = %v", angle, v.Angle())
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{3199.5, 0, 3199, 3199},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
