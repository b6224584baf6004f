package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/megaquad/internal/engine/geometry"
	"github.com/Faultbox/megaquad/internal/engine/shader"
	"github.com/Faultbox/megaquad/internal/engine/terrain"
	"github.com/Faultbox/megaquad/internal/engine/texture"
)

// glMesh is the GPU side of one registered mesh.
type glMesh struct {
	program  *shader.Program
	kind     terrain.Primitive
	vertices int
	indices  int32

	vao uint32
	vbo uint32
	ebo uint32

	textures []samplerBinding
}

type samplerBinding struct {
	tex     uint32
	sampler string
}

// Registry stores meshes in GL vertex arrays. Handles are VAO names.
// Meshes are registered against the program they will be drawn with, which
// supplies the location of the position attribute.
type Registry struct {
	program *shader.Program
	meshes  map[geometry.Handle]*glMesh
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{meshes: make(map[geometry.Handle]*glMesh)}
}

// WithProgram returns a view of r that registers meshes for p.
// The view shares r's meshes.
func (r *Registry) WithProgram(p *shader.Program) *Registry {
	return &Registry{program: p, meshes: r.meshes}
}

// RegisterMesh implements geometry.Registry.
func (r *Registry) RegisterMesh(vertexCount int, kind terrain.Primitive) (geometry.Handle, error) {
	if r.program == nil {
		return 0, fmt.Errorf("register mesh: no program bound")
	}
	if err := geometry.CheckVertexCount(vertexCount); err != nil {
		return 0, fmt.Errorf("register mesh: %w", err)
	}

	m := &glMesh{program: r.program, kind: kind, vertices: vertexCount}
	gl.GenVertexArrays(1, &m.vao)

	h := geometry.Handle(m.vao)
	r.meshes[h] = m
	return h, nil
}

// AttachPositions implements geometry.Registry.
func (r *Registry) AttachPositions(h geometry.Handle, positions []float32, componentsPerVertex int) error {
	m, err := r.lookup(h)
	if err != nil {
		return err
	}
	if err := geometry.CheckPositions(m.vertices, positions, componentsPerVertex); err != nil {
		return err
	}

	loc := m.program.Attrib(geometry.PositionAttribute)
	if loc < 0 {
		// The program optimised the input away; the mesh still draws.
		log.Warn("position attribute not active",
			zap.String("program", m.program.Name),
			zap.String("attribute", geometry.PositionAttribute))
		loc = 0
	}

	gl.BindVertexArray(m.vao)
	if m.vbo == 0 {
		gl.GenBuffers(1, &m.vbo)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(uint32(loc), int32(componentsPerVertex), gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(uint32(loc))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// AttachIndices implements geometry.Registry.
func (r *Registry) AttachIndices(h geometry.Handle, indices []uint32) error {
	m, err := r.lookup(h)
	if err != nil {
		return err
	}
	if len(indices) == 0 {
		return fmt.Errorf("empty index buffer: %w", geometry.ErrSizeMismatch)
	}
	if err := geometry.CheckIndices(m.vertices, indices); err != nil {
		return err
	}

	gl.BindVertexArray(m.vao)
	if m.ebo == 0 {
		gl.GenBuffers(1, &m.ebo)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	m.indices = int32(len(indices))
	return nil
}

// AttachTexture implements geometry.Registry.
func (r *Registry) AttachTexture(h geometry.Handle, tex texture.Handle, sampler string) error {
	m, err := r.lookup(h)
	if err != nil {
		return err
	}
	m.textures = append(m.textures, samplerBinding{tex: uint32(tex), sampler: sampler})
	return nil
}

// Draw binds the mesh's textures to consecutive units and draws it with the
// program it was registered for. The program must already be in use with
// its per-frame uniforms set.
func (r *Registry) Draw(h geometry.Handle) error {
	m, err := r.lookup(h)
	if err != nil {
		return err
	}

	for i, b := range m.textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, b.tex)
		m.program.SetInt(b.sampler, int32(i))
	}

	gl.BindVertexArray(m.vao)
	if m.indices > 0 {
		gl.DrawElements(glPrimitive(m.kind), m.indices, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(glPrimitive(m.kind), 0, int32(m.vertices))
	}
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
	return nil
}

// Close deletes every vertex array and buffer in the registry.
func (r *Registry) Close() {
	for h, m := range r.meshes {
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		gl.DeleteVertexArrays(1, &m.vao)
		delete(r.meshes, h)
	}
}

func (r *Registry) lookup(h geometry.Handle) (*glMesh, error) {
	m, ok := r.meshes[h]
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h, geometry.ErrUnknownHandle)
	}
	return m, nil
}

func glPrimitive(p terrain.Primitive) uint32 {
	if p == terrain.TriangleStrip {
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}
