package math

import (
	"errors"
	"math"
	"testing"
)

func TestMulIdentity(t *testing.T) {
	m := Scale(2, 3, 4)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestScale(t *testing.T) {
	m := Scale(20, 1, 10)
	got := m.TransformPoint(Vec3{1, 1, -1})
	want := Vec3{20, 1, -10}
	if got != want {
		t.Errorf("TransformPoint with scale: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m, err := LookAt(eye, Vec3{}, Up)
	if err != nil {
		t.Fatalf("LookAt: %v", err)
	}

	// The eye maps to the view-space origin.
	p := m.TransformPoint(eye)
	if abs(p.X) > 1e-5 || abs(p.Y) > 1e-5 || abs(p.Z) > 1e-5 {
		t.Errorf("eye in view space = %v, want origin", p)
	}

	// The target lies straight ahead on -Z.
	c := m.TransformPoint(Vec3{})
	if abs(c.Z+5) > 1e-5 {
		t.Errorf("center in view space = %v, want (0, 0, -5)", c)
	}
}

func TestLookAtDegenerate(t *testing.T) {
	tests := []struct {
		name            string
		eye, center, up Vec3
	}{
		{"same point", Vec3{1, 1, 1}, Vec3{1, 1, 1}, Up},
		{"up along view", Vec3{0, 5, 0}, Vec3{}, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LookAt(tt.eye, tt.center, tt.up)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("expected ErrDegenerateGeometry, got %v", err)
			}
			if m != Identity() {
				t.Errorf("expected identity fallback, got %v", m)
			}
		})
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
