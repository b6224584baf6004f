package terrain

import "github.com/Faultbox/megaquad/pkg/math"

// stripRows returns how many rows of N cells a strip of StripVertexCount(N)
// vertices can cover. A boustrophedon walk over R rows emits R·(2N+1)+1 vertices.
func stripRows(n int) int {
	return int((2*int64(n)*int64(n) + 3) / (2*int64(n) + 1))
}

// BuildStrip creates a triangle strip with no index buffer by walking the grid
// boustrophedon-style: step up a row, then alternate diagonal steps back down
// and up again across the row; at the row end step up once more and reverse.
//
// The walk covers the unit square in stripRows(N) rows of N columns; the
// vertices left over from the 2·(N²+2) total repeat the final vertex, which
// only adds zero-area triangles. The first row runs right to left so every
// face is counter-clockwise seen from +Y.
func BuildStrip(p GridParameters) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Resolution
	total := StripVertexCount(n)
	if err := p.checkBudget(total, 0); err != nil {
		return nil, err
	}

	rows := stripRows(n)
	cols, depth := float32(n), float32(rows)

	vertices := make([]Vertex, 0, total)
	emit := func(col, row int) {
		vertices = append(vertices, Vertex{Position: math.Vec3{
			X: float32(col) / cols,
			Y: 0,
			Z: -float32(row) / depth,
		}})
	}

	col, dir := n, -1
	emit(col, 0)
	for row := 0; row < rows; row++ {
		// The first up step of a later row is the turn: it lines up with the
		// previous two vertices and yields one zero-area triangle.
		emit(col, row+1)
		for k := 0; k < n; k++ {
			col += dir
			emit(col, row)
			emit(col, row+1)
		}
		dir = -dir
	}

	last := vertices[len(vertices)-1]
	for int64(len(vertices)) < total {
		vertices = append(vertices, last)
	}

	return &Mesh{Kind: TriangleStrip, Vertices: vertices}, nil
}
