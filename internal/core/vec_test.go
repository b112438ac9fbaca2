package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %v, expected (6, 8)", got)
	}
	if got := a.Neg(); got != V(-3, -4) {
		t.Errorf("Neg = %v, expected (-3, -4)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v, expected 25", got)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V(10, 0), V(1, 0)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"negative", V(0, -7), V(0, -1)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !approxEq(got.X, tc.want.X) || !approxEq(got.Y, tc.want.Y) {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVecPerp(t *testing.T) {
	// (x, y) -> (y, -x)
	if got := V(1, 0).Perp(); got != V(0, -1) {
		t.Errorf("Perp(1,0) = %v, expected (0, -1)", got)
	}
	if got := V(2, 3).Perp(); got != V(3, -2) {
		t.Errorf("Perp(2,3) = %v, expected (3, -2)", got)
	}
}

func TestVecRotateAndFromAngle(t *testing.T) {
	got := V(1, 0).Rotate(math.Pi / 2)
	if !approxEq(got.X, 0) || !approxEq(got.Y, 1) {
		t.Errorf("Rotate 90deg = %v, expected (0, 1)", got)
	}

	p := FromAngle(math.Pi, 670)
	if !approxEq(p.X, -670) || !approxEq(p.Y, 0) {
		t.Errorf("FromAngle(pi, 670) = %v, expected (-670, 0)", p)
	}
}
