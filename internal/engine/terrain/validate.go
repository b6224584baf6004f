package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/megaquad/pkg/math"
)

// triangles calls fn with the vertex indices of every triangle in draw order,
// undoing the winding flip GL applies to odd strip triangles.
func (m *Mesh) triangles(fn func(t int, a, b, c uint32) error) error {
	idx := func(i int) uint32 {
		if m.Indices != nil {
			return m.Indices[i]
		}
		return uint32(i)
	}
	count := len(m.Vertices)
	if m.Indices != nil {
		count = len(m.Indices)
	}

	switch m.Kind {
	case Triangles:
		if count%3 != 0 {
			return fmt.Errorf("%d elements is not a multiple of 3: %w", count, ErrMalformedMesh)
		}
		for t := 0; t < count/3; t++ {
			if err := fn(t, idx(3*t), idx(3*t+1), idx(3*t+2)); err != nil {
				return err
			}
		}
	case TriangleStrip:
		for t := 0; t+2 < count; t++ {
			a, b := idx(t), idx(t+1)
			if t%2 == 1 {
				a, b = b, a
			}
			if err := fn(t, a, b, idx(t+2)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("primitive %v: %w", m.Kind, ErrMalformedMesh)
	}
	return nil
}

// FaceNormals returns the unit normal of every non-degenerate triangle in draw order.
// Zero-area strip triangles (turns and padding) are skipped; a zero-area
// triangle in a list is reported as math.ErrDegenerateGeometry.
func FaceNormals(m *Mesh) ([]math.Vec3, error) {
	var normals []math.Vec3
	err := m.triangles(func(t int, a, b, c uint32) error {
		for _, i := range [3]uint32{a, b, c} {
			if int(i) >= len(m.Vertices) {
				return fmt.Errorf("triangle %d references vertex %d of %d: %w",
					t, i, len(m.Vertices), ErrMalformedMesh)
			}
		}
		n, err := math.TriangleNormal(
			m.Vertices[a].Position,
			m.Vertices[b].Position,
			m.Vertices[c].Position,
		)
		if errors.Is(err, math.ErrDegenerateGeometry) && m.Kind == TriangleStrip {
			return nil
		}
		if err != nil {
			return fmt.Errorf("triangle %d: %w", t, err)
		}
		normals = append(normals, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return normals, nil
}

// Validate checks that every index is in range, that list triangles have
// area, and that all faces share one orientation.
func Validate(m *Mesh) error {
	normals, err := FaceNormals(m)
	if err != nil {
		if errors.Is(err, math.ErrDegenerateGeometry) {
			return fmt.Errorf("%w: %w", ErrMalformedMesh, err)
		}
		return err
	}
	for i, n := range normals {
		if n.Dot(normals[0]) <= 0 {
			return fmt.Errorf("face %d normal %v opposes %v: %w", i, n, normals[0], ErrMalformedMesh)
		}
	}
	return nil
}
