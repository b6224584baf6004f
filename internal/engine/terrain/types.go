// Package terrain builds the flat grid meshes the terrain and overlay layers are drawn from.
//
// All builders are pure functions of their inputs: they allocate their own
// buffers, return them to the caller, and never touch shared state. Meshes
// span x ∈ [0,1], z ∈ [−1,0]; elevation is applied later by the vertex shader.
package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/megaquad/pkg/math"
)

var (
	// ErrInvalidArgument is returned for parameters outside their valid domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAllocation is returned when the requested mesh would not fit in memory
	// or in 32-bit indices.
	ErrAllocation = errors.New("mesh too large")
	// ErrMalformedMesh is returned by Validate for out-of-range indices,
	// degenerate list triangles or mixed winding.
	ErrMalformedMesh = errors.New("malformed mesh")
)

// Primitive tells the renderer how consecutive vertices or indices form triangles.
type Primitive int

const (
	// Triangles: every three indices name one triangle.
	Triangles Primitive = iota
	// TriangleStrip: each vertex after the first two closes a triangle with the previous two.
	TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// Vertex is a mesh vertex. Position is the only attribute; texture
// coordinates are derived from it in the shader.
type Vertex struct {
	Position math.Vec3
}

// Mesh holds vertex and optional index data ready for upload.
// Vertex order is significant: it fixes triangle winding.
type Mesh struct {
	Kind     Primitive
	Vertices []Vertex
	Indices  []uint32 // nil for a strip drawn straight from the vertex order
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int { return len(m.Indices) }

// Indexed reports whether the mesh carries an index buffer.
func (m *Mesh) Indexed() bool { return m.Indices != nil }

// Positions returns the vertex positions as a flat x,y,z slice.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		out = append(out, v.Position.X, v.Position.Y, v.Position.Z)
	}
	return out
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Bounds returns the bounding box of the mesh vertices.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
