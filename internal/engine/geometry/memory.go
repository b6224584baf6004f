package geometry

import (
	"fmt"

	"github.com/Faultbox/megaquad/internal/engine/terrain"
	"github.com/Faultbox/megaquad/internal/engine/texture"
)

// Record is what a Memory registry holds for one handle.
type Record struct {
	VertexCount int
	Kind        terrain.Primitive
	Positions   []float32
	Components  int
	Indices     []uint32
	Textures    map[string]texture.Handle
}

// LoadedTexture is what a Memory loader holds for one texture.
type LoadedTexture struct {
	Path  string
	WrapS texture.WrapMode
	WrapT texture.WrapMode
}

// Memory is a Registry and TextureLoader that keeps everything in memory.
// It backs headless runs and tests.
type Memory struct {
	records  map[Handle]*Record
	textures map[texture.Handle]LoadedTexture
	next     Handle
	nextTex  texture.Handle

	// Calls counts every Registry method invocation.
	Calls int
}

// NewMemory creates an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{
		records:  make(map[Handle]*Record),
		textures: make(map[texture.Handle]LoadedTexture),
	}
}

// RegisterMesh implements Registry.
func (m *Memory) RegisterMesh(vertexCount int, kind terrain.Primitive) (Handle, error) {
	m.Calls++
	if err := CheckVertexCount(vertexCount); err != nil {
		return 0, err
	}
	m.next++
	m.records[m.next] = &Record{
		VertexCount: vertexCount,
		Kind:        kind,
		Textures:    make(map[string]texture.Handle),
	}
	return m.next, nil
}

// AttachPositions implements Registry.
func (m *Memory) AttachPositions(h Handle, positions []float32, componentsPerVertex int) error {
	m.Calls++
	r, err := m.lookup(h)
	if err != nil {
		return err
	}
	if err := CheckPositions(r.VertexCount, positions, componentsPerVertex); err != nil {
		return err
	}
	r.Positions = append([]float32(nil), positions...)
	r.Components = componentsPerVertex
	return nil
}

// AttachIndices implements Registry.
func (m *Memory) AttachIndices(h Handle, indices []uint32) error {
	m.Calls++
	r, err := m.lookup(h)
	if err != nil {
		return err
	}
	if err := CheckIndices(r.VertexCount, indices); err != nil {
		return err
	}
	r.Indices = append([]uint32(nil), indices...)
	return nil
}

// AttachTexture implements Registry.
func (m *Memory) AttachTexture(h Handle, tex texture.Handle, sampler string) error {
	m.Calls++
	r, err := m.lookup(h)
	if err != nil {
		return err
	}
	if _, ok := m.textures[tex]; !ok {
		return fmt.Errorf("texture %d: %w", tex, ErrUnknownHandle)
	}
	r.Textures[sampler] = tex
	return nil
}

// LoadTexture implements TextureLoader. Nothing is read from disk.
func (m *Memory) LoadTexture(path string, wrapS, wrapT texture.WrapMode) (texture.Handle, error) {
	m.nextTex++
	m.textures[m.nextTex] = LoadedTexture{Path: path, WrapS: wrapS, WrapT: wrapT}
	return m.nextTex, nil
}

// Record returns the data registered under h.
func (m *Memory) Record(h Handle) (*Record, bool) {
	r, ok := m.records[h]
	return r, ok
}

// Texture returns the texture loaded under h.
func (m *Memory) Texture(h texture.Handle) (LoadedTexture, bool) {
	t, ok := m.textures[h]
	return t, ok
}

// Len returns the number of registered meshes.
func (m *Memory) Len() int {
	return len(m.records)
}

func (m *Memory) lookup(h Handle) (*Record, error) {
	r, ok := m.records[h]
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h, ErrUnknownHandle)
	}
	return r, nil
}
