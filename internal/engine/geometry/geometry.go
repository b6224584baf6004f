// Package geometry is the boundary between mesh builders and whatever stores
// meshes for drawing. Meshes are registered once at startup and never per frame.
package geometry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/megaquad/internal/engine/terrain"
	"github.com/Faultbox/megaquad/internal/engine/texture"
	"github.com/Faultbox/megaquad/internal/logger"
)

var log = logger.Named("geometry")

// PositionAttribute is the shader input the vertex positions are bound to.
const PositionAttribute = "in_Position"

var (
	// ErrUnknownHandle is returned for a handle the registry did not issue.
	ErrUnknownHandle = errors.New("unknown geometry handle")
	// ErrSizeMismatch is returned when attached data disagrees with the registered vertex count.
	ErrSizeMismatch = errors.New("geometry size mismatch")
)

// Handle identifies registered geometry.
type Handle uint32

// Registry accepts mesh data for drawing.
type Registry interface {
	RegisterMesh(vertexCount int, kind terrain.Primitive) (Handle, error)
	AttachPositions(h Handle, positions []float32, componentsPerVertex int) error
	AttachIndices(h Handle, indices []uint32) error
	AttachTexture(h Handle, tex texture.Handle, sampler string) error
}

// TextureLoader decodes and stores a texture.
type TextureLoader interface {
	LoadTexture(path string, wrapS, wrapT texture.WrapMode) (texture.Handle, error)
}

// Binding names a texture file and the shader sampler it feeds.
type Binding struct {
	Path    string
	Sampler string
	WrapS   texture.WrapMode
	WrapT   texture.WrapMode
}

// Upload registers mesh with reg, attaches its positions and indices, then
// loads and attaches each texture binding.
func Upload(reg Registry, loader TextureLoader, mesh *terrain.Mesh, bindings ...Binding) (Handle, error) {
	h, err := reg.RegisterMesh(mesh.VertexCount(), mesh.Kind)
	if err != nil {
		return 0, fmt.Errorf("register mesh: %w", err)
	}

	if err := reg.AttachPositions(h, mesh.Positions(), 3); err != nil {
		return 0, fmt.Errorf("attach positions: %w", err)
	}
	if mesh.Indexed() {
		if err := reg.AttachIndices(h, mesh.Indices); err != nil {
			return 0, fmt.Errorf("attach indices: %w", err)
		}
	}

	for _, b := range bindings {
		tex, err := loader.LoadTexture(b.Path, b.WrapS, b.WrapT)
		if err != nil {
			return 0, fmt.Errorf("load %s for %s: %w", b.Path, b.Sampler, err)
		}
		if err := reg.AttachTexture(h, tex, b.Sampler); err != nil {
			return 0, fmt.Errorf("attach %s: %w", b.Sampler, err)
		}
	}

	log.Info("geometry uploaded",
		zap.Uint32("handle", uint32(h)),
		zap.Stringer("kind", mesh.Kind),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", mesh.IndexCount()),
		zap.Int("textures", len(bindings)),
	)
	return h, nil
}

// CheckPositions validates an attach call against the registered vertex count.
// Registry implementations share it.
func CheckPositions(vertexCount int, positions []float32, componentsPerVertex int) error {
	if componentsPerVertex < 1 || componentsPerVertex > 4 {
		return fmt.Errorf("%d components per vertex: %w", componentsPerVertex, ErrSizeMismatch)
	}
	if len(positions) != vertexCount*componentsPerVertex {
		return fmt.Errorf("%d floats for %d vertices of %d components: %w",
			len(positions), vertexCount, componentsPerVertex, ErrSizeMismatch)
	}
	return nil
}

// CheckVertexCount rejects counts that a single draw call cannot cover.
func CheckVertexCount(vertexCount int) error {
	if vertexCount <= 0 || int64(vertexCount) > terrain.MaxDrawCount {
		return fmt.Errorf("vertex count %d outside [1, %d]: %w", vertexCount, terrain.MaxDrawCount, ErrSizeMismatch)
	}
	return nil
}

// CheckIndices validates that every index addresses a registered vertex.
func CheckIndices(vertexCount int, indices []uint32) error {
	if int64(len(indices)) > terrain.MaxDrawCount {
		return fmt.Errorf("%d indices exceed one draw call: %w", len(indices), ErrSizeMismatch)
	}
	for i, idx := range indices {
		if int64(idx) >= int64(vertexCount) {
			return fmt.Errorf("index %d = %d, only %d vertices: %w", i, idx, vertexCount, ErrSizeMismatch)
		}
	}
	return nil
}
