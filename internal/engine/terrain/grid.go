package terrain

import "github.com/Faultbox/megaquad/pkg/math"

// BuildGrid creates the indexed grid: (N+1)² shared vertices and a triangle
// list of 6·N² indices, two counter-clockwise (seen from +Y) triangles per cell.
func BuildGrid(p GridParameters) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Resolution
	if err := p.checkBudget(GridVertexCount(n), GridIndexCount(n)); err != nil {
		return nil, err
	}

	stride := n + 1
	res := float32(n)

	// Row-major: the index formulas below depend on it.
	vertices := make([]Vertex, 0, GridVertexCount(n))
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			vertices = append(vertices, Vertex{Position: math.Vec3{
				X: float32(j) / res,
				Y: 0,
				Z: -float32(i) / res,
			}})
		}
	}

	indices := make([]uint32, 0, GridIndexCount(n))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := uint32(j + stride*i)     // near left
			b := a + 1                    // near right
			c := uint32(j + stride*(i+1)) // far left
			d := c + 1                    // far right
			indices = append(indices,
				a, b, c,
				b, d, c,
			)
		}
	}

	return &Mesh{Kind: Triangles, Vertices: vertices, Indices: indices}, nil
}
