package terrain

import (
	"fmt"
	stdmath "math"
)

const (
	// MaxResolution keeps (N+1)² vertices addressable with uint32 indices.
	MaxResolution = 65534

	// MaxDrawCount is the largest vertex or index count a single GL draw
	// call accepts (its count parameter is a GLsizei).
	MaxDrawCount = stdmath.MaxInt32

	// DefaultMemoryLimit caps the vertex and index buffers of a single mesh.
	DefaultMemoryLimit int64 = 1 << 30

	vertexBytes = 12 // three float32
	indexBytes  = 4
)

// GridParameters configures a grid build.
type GridParameters struct {
	// Resolution is the number of subdivisions per side (N ≥ 1).
	Resolution int
	// MemoryLimit caps the estimated buffer size in bytes. Zero means DefaultMemoryLimit.
	MemoryLimit int64
}

// CellSize returns the side length of one grid cell in the unit square.
func (p GridParameters) CellSize() float32 {
	return 1 / float32(p.Resolution)
}

// Validate rejects resolutions outside [1, MaxResolution].
func (p GridParameters) Validate() error {
	if p.Resolution <= 0 {
		return fmt.Errorf("resolution %d must be at least 1: %w", p.Resolution, ErrInvalidArgument)
	}
	if p.Resolution > MaxResolution {
		return fmt.Errorf("resolution %d exceeds %d: %w", p.Resolution, MaxResolution, ErrAllocation)
	}
	if p.MemoryLimit < 0 {
		return fmt.Errorf("memory limit %d is negative: %w", p.MemoryLimit, ErrInvalidArgument)
	}
	return nil
}

func (p GridParameters) limit() int64 {
	if p.MemoryLimit == 0 {
		return DefaultMemoryLimit
	}
	return p.MemoryLimit
}

// checkBudget verifies the buffers for the given counts fit before anything is allocated.
func (p GridParameters) checkBudget(vertices, indices int64) error {
	if vertices > stdmath.MaxUint32 {
		return fmt.Errorf("%d vertices exceed 32-bit indexing: %w", vertices, ErrAllocation)
	}
	if vertices > MaxDrawCount || indices > MaxDrawCount {
		return fmt.Errorf("resolution %d needs %d vertices and %d indices, one draw takes at most %d: %w",
			p.Resolution, vertices, indices, MaxDrawCount, ErrAllocation)
	}
	size := vertices*vertexBytes + indices*indexBytes
	if size > p.limit() {
		return fmt.Errorf("resolution %d needs %d bytes, limit is %d: %w",
			p.Resolution, size, p.limit(), ErrAllocation)
	}
	return nil
}

// GridVertexCount returns (N+1)², the vertex count of the indexed grid.
func GridVertexCount(n int) int64 {
	return int64(n+1) * int64(n+1)
}

// GridIndexCount returns 6·N², the index count of the indexed grid.
func GridIndexCount(n int) int64 {
	return 6 * int64(n) * int64(n)
}

// StripVertexCount returns 2·(N²+2), the vertex count of the zig-zag strip.
func StripVertexCount(n int) int64 {
	return 2 * (int64(n)*int64(n) + 2)
}
