package math

import (
	"errors"
	"math/rand/v2"
	"testing"
)

const eps = 1e-5

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps
}

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got, want := a.Add(b), (Vec3{5, 7, 9}); got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec3{-3, -3, -3}); got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	if got := Dot(Vec3{1, 2, 3}, Vec3{4, -5, 6}); got != 12 {
		t.Errorf("Dot() = %v, want 12", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}

	// Parallel inputs give the zero vector.
	if got := x.Cross(x.Scale(3)); got != (Vec3{}) {
		t.Errorf("Cross of parallel vectors = %v, want zero", got)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		a := Vec3{RandomRange(r, -1, 1), RandomRange(r, -1, 1), RandomRange(r, -1, 1)}
		b := Vec3{RandomRange(r, -1, 1), RandomRange(r, -1, 1), RandomRange(r, -1, 1)}
		c := a.Cross(b)
		if d := Dot(c, a); abs(d) > 1e-4 {
			t.Fatalf("dot(cross(a,b), a) = %v for a=%v b=%v", d, a, b)
		}
		if d := Dot(c, b); abs(d) > 1e-4 {
			t.Fatalf("dot(cross(a,b), b) = %v for a=%v b=%v", d, a, b)
		}
	}
}

func TestNormalize(t *testing.T) {
	n, err := Vec3{3, 0, 4}.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !near(n, Vec3{0.6, 0, 0.8}) {
		t.Errorf("Normalize() = %v, want (0.6, 0, 0.8)", n)
	}

	again, err := n.Normalize()
	if err != nil {
		t.Fatalf("Normalize twice: %v", err)
	}
	if !near(again, n) {
		t.Errorf("Normalize is not idempotent: %v then %v", n, again)
	}
}

func TestNormalizeExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"large axis", Vec3{1e20, 0, 0}, Vec3{1, 0, 0}},
		{"large diagonal", Vec3{3e19, 4e19, 0}, Vec3{0.6, 0.8, 0}},
		{"tiny axis", Vec3{1e-23, 0, 0}, Vec3{1, 0, 0}},
		{"tiny diagonal", Vec3{0, 3e-30, -4e-30}, Vec3{0, 0.6, -0.8}},
		{"subnormal", Vec3{0, 0, 1e-44}, Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.v.Normalize()
			if err != nil {
				t.Fatalf("Normalize(%v): %v", tt.v, err)
			}
			if !near(n, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, n, tt.want)
			}
		})
	}
}

func TestLengthExtremeMagnitudes(t *testing.T) {
	if l := (Vec3{3e19, 4e19, 0}).Length(); abs(l/5e19-1) > eps {
		t.Errorf("Length = %v, want 5e19", l)
	}
	if l := (Vec3{3e-30, 4e-30, 0}).Length(); abs(l/5e-30-1) > eps {
		t.Errorf("Length = %v, want 5e-30", l)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	inf := float32(1)
	for i := 0; i < 200; i++ {
		inf *= 10
	}

	tests := []struct {
		name string
		v    Vec3
	}{
		{"zero", Vec3{}},
		{"infinite", Vec3{inf, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.v.Normalize(); !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("expected ErrDegenerateGeometry, got %v", err)
			}
		})
	}
}

func TestTriangleNormal(t *testing.T) {
	// Counter-clockwise seen from +Y.
	n, err := TriangleNormal(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1})
	if err != nil {
		t.Fatalf("TriangleNormal: %v", err)
	}
	if !near(n, Up) {
		t.Errorf("TriangleNormal() = %v, want %v", n, Up)
	}

	// Same triangle at extreme scales.
	for _, k := range []float32{1e20, 1e-22} {
		n, err := TriangleNormal(Vec3{0, 0, 0}, Vec3{k, 0, 0}, Vec3{0, 0, -k})
		if err != nil {
			t.Fatalf("TriangleNormal at scale %g: %v", k, err)
		}
		if !near(n, Up) {
			t.Errorf("TriangleNormal at scale %g = %v, want %v", k, n, Up)
		}
	}

	// Reversed winding flips the normal.
	n, err = TriangleNormal(Vec3{0, 0, 0}, Vec3{0, 0, -1}, Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("TriangleNormal: %v", err)
	}
	if !near(n, Up.Scale(-1)) {
		t.Errorf("reversed TriangleNormal() = %v, want (0, -1, 0)", n)
	}
}

func TestTriangleNormalUnitLength(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		p := [3]Vec3{}
		for k := range p {
			p[k] = Vec3{RandomRange(r, -10, 10), RandomRange(r, -10, 10), RandomRange(r, -10, 10)}
		}
		n, err := TriangleNormal(p[0], p[1], p[2])
		if err != nil {
			continue
		}
		if l := n.Length(); abs(l-1) > 1e-4 {
			t.Fatalf("|TriangleNormal(%v)| = %v, want 1", p, l)
		}
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Vec3
	}{
		{"collinear", Vec3{0, 0, 0}, Vec3{1, 1, 1}, Vec3{2, 2, 2}},
		{"coincident", Vec3{1, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TriangleNormal(tt.p1, tt.p2, tt.p3); !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("expected ErrDegenerateGeometry, got %v", err)
			}
		})
	}
}

func TestOutputParameters(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1, 1, 1}

	// out aliases an input.
	out := a
	AddTo(&out, out, b)
	if out != (Vec3{2, 3, 4}) {
		t.Errorf("AddTo aliased = %v, want (2, 3, 4)", out)
	}

	var c Vec3
	if got := *SubTo(CopyTo(&c, a), a, b); got != (Vec3{0, 1, 2}) {
		t.Errorf("chained SubTo = %v, want (0, 1, 2)", got)
	}

	CrossTo(&c, Vec3{1, 0, 0}, Vec3{0, 1, 0})
	if c != (Vec3{0, 0, 1}) {
		t.Errorf("CrossTo = %v, want (0, 0, 1)", c)
	}

	keep := Vec3{9, 9, 9}
	if _, err := NormalizeTo(&keep, Vec3{}); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("NormalizeTo zero: expected ErrDegenerateGeometry, got %v", err)
	}
	if keep != (Vec3{9, 9, 9}) {
		t.Errorf("NormalizeTo modified out on error: %v", keep)
	}

	var n Vec3
	if _, err := TriangleNormalTo(&n, Vec3{}, Vec3{1, 0, 0}, Vec3{0, 0, -1}); err != nil {
		t.Fatalf("TriangleNormalTo: %v", err)
	}
	if !near(n, Up) {
		t.Errorf("TriangleNormalTo = %v, want %v", n, Up)
	}
}
