package terrain

import (
	"fmt"

	"github.com/Faultbox/megaquad/pkg/math"
)

// BuildFlatQuad creates a single quad (two triangles) over the unit footprint
// at the given height. The cloud layer is drawn from it.
func BuildFlatQuad(height float32) (*Mesh, error) {
	if !(math.Vec3{Y: height}).IsFinite() {
		return nil, fmt.Errorf("quad height %v: %w", height, ErrInvalidArgument)
	}

	return &Mesh{
		Kind: Triangles,
		Vertices: []Vertex{
			{Position: math.Vec3{X: 0, Y: height, Z: 0}},
			{Position: math.Vec3{X: 1, Y: height, Z: 0}},
			{Position: math.Vec3{X: 1, Y: height, Z: -1}},
			{Position: math.Vec3{X: 0, Y: height, Z: -1}},
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}, nil
}
