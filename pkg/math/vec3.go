// Package math provides the vector and matrix types used to build and light terrain meshes.
package math

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrDegenerateGeometry is returned when a direction cannot be derived,
// e.g. normalizing a zero-length vector or taking the normal of a collinear triangle.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Vec3 is a 3D vector. It is used for both points and directions.
type Vec3 struct {
	X, Y, Z float32
}

// Up is the +Y unit vector.
var Up = Vec3{X: 0, Y: 1, Z: 0}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product. Parallel inputs yield the zero vector.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the Euclidean magnitude. Components are scaled by the
// largest one before squaring, so finite vectors near the float32 limits
// neither overflow nor underflow.
func (v Vec3) Length() float32 {
	m := v.maxAbs()
	if m == 0 || !isFinite(m) {
		return m
	}
	s := v.div(m)
	return m * math32.Sqrt(s.X*s.X+s.Y*s.Y+s.Z*s.Z)
}

// div divides each component by d. Used instead of Scale(1/d), whose
// reciprocal overflows for subnormal d.
func (v Vec3) div(d float32) Vec3 {
	return Vec3{v.X / d, v.Y / d, v.Z / d}
}

// maxAbs returns the largest absolute component, or NaN if any is NaN.
func (v Vec3) maxAbs() float32 {
	return max(math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z))
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Normalize returns the unit vector pointing along v.
// A zero-length or non-finite v yields ErrDegenerateGeometry.
func (v Vec3) Normalize() (Vec3, error) {
	m := v.maxAbs()
	if m == 0 || !isFinite(m) {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateGeometry)
	}
	// Dividing by m first keeps the squared length within [1, 3].
	s := v.div(m)
	l := math32.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
	return Vec3{s.X / l, s.Y / l, s.Z / l}, nil
}

// Array returns the components as a [3]float32.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float32 {
	return a.Dot(b)
}

// TriangleNormal returns normalize(cross(p1-p2, p1-p3)).
// The sign follows the winding p1→p2→p3: counter-clockwise seen from a side
// yields a normal pointing toward that side.
func TriangleNormal(p1, p2, p3 Vec3) (Vec3, error) {
	// Each edge is rescaled to unit max component so the cross product of
	// very long or very short edges stays representable. A positive scale
	// leaves the direction unchanged.
	n, err := unitScaled(p1.Sub(p2)).Cross(unitScaled(p1.Sub(p3))).Normalize()
	if err != nil {
		return Vec3{}, fmt.Errorf("triangle %v %v %v: %w", p1, p2, p3, ErrDegenerateGeometry)
	}
	return n, nil
}

// unitScaled divides v by its largest absolute component. Zero and
// non-finite vectors are returned unchanged.
func unitScaled(v Vec3) Vec3 {
	m := v.maxAbs()
	if m == 0 || !isFinite(m) {
		return v
	}
	return v.div(m)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
