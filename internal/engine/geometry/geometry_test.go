package geometry

import (
	"errors"
	"testing"

	"github.com/Faultbox/megaquad/internal/engine/terrain"
	"github.com/Faultbox/megaquad/internal/engine/texture"
)

func TestUploadIndexedGrid(t *testing.T) {
	mesh, err := terrain.BuildGrid(terrain.GridParameters{Resolution: 4})
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	mem := NewMemory()
	h, err := Upload(mem, mem, mesh,
		Binding{Path: "elev.png", Sampler: "texE", WrapS: texture.ClampToEdge, WrapT: texture.ClampToEdge},
		Binding{Path: "topo.jpg", Sampler: "texT", WrapS: texture.Repeat, WrapT: texture.Repeat},
	)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	rec, ok := mem.Record(h)
	if !ok {
		t.Fatalf("handle %d not recorded", h)
	}
	if rec.VertexCount != 25 || rec.Kind != terrain.Triangles {
		t.Errorf("record = %d vertices %v, want 25 triangles", rec.VertexCount, rec.Kind)
	}
	if rec.Components != 3 || len(rec.Positions) != 75 {
		t.Errorf("positions = %d floats of %d components, want 75 of 3", len(rec.Positions), rec.Components)
	}
	if len(rec.Indices) != 96 {
		t.Errorf("indices = %d, want 96", len(rec.Indices))
	}

	elev, ok := mem.Texture(rec.Textures["texE"])
	if !ok || elev.Path != "elev.png" || elev.WrapS != texture.ClampToEdge {
		t.Errorf("texE = %+v, want elev.png clamped", elev)
	}
	topo, ok := mem.Texture(rec.Textures["texT"])
	if !ok || topo.Path != "topo.jpg" || topo.WrapT != texture.Repeat {
		t.Errorf("texT = %+v, want topo.jpg repeated", topo)
	}

	// register, positions, indices, two textures
	if mem.Calls != 5 {
		t.Errorf("registry called %d times, want 5", mem.Calls)
	}
}

func TestUploadStripHasNoIndices(t *testing.T) {
	mesh, err := terrain.BuildStrip(terrain.GridParameters{Resolution: 3})
	if err != nil {
		t.Fatalf("BuildStrip: %v", err)
	}

	mem := NewMemory()
	h, err := Upload(mem, mem, mesh)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	rec, _ := mem.Record(h)
	if rec.Indices != nil {
		t.Errorf("strip uploaded %d indices, want none", len(rec.Indices))
	}
	if rec.Kind != terrain.TriangleStrip {
		t.Errorf("kind = %v, want %v", rec.Kind, terrain.TriangleStrip)
	}
	if mem.Calls != 2 {
		t.Errorf("registry called %d times, want 2", mem.Calls)
	}
}

func TestMemoryRejects(t *testing.T) {
	mem := NewMemory()
	h, err := mem.RegisterMesh(4, terrain.Triangles)
	if err != nil {
		t.Fatalf("RegisterMesh: %v", err)
	}

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"zero vertices", func() error { _, err := mem.RegisterMesh(0, terrain.Triangles); return err }, ErrSizeMismatch},
		{"beyond draw count", func() error {
			_, err := mem.RegisterMesh(terrain.MaxDrawCount+1, terrain.Triangles)
			return err
		}, ErrSizeMismatch},
		{"unknown handle", func() error { return mem.AttachIndices(h+1, nil) }, ErrUnknownHandle},
		{"short positions", func() error { return mem.AttachPositions(h, make([]float32, 9), 3) }, ErrSizeMismatch},
		{"bad components", func() error { return mem.AttachPositions(h, make([]float32, 20), 5) }, ErrSizeMismatch},
		{"index out of range", func() error { return mem.AttachIndices(h, []uint32{0, 1, 4}) }, ErrSizeMismatch},
		{"unknown texture", func() error { return mem.AttachTexture(h, 99, "texC") }, ErrUnknownHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

type failingLoader struct{}

func (failingLoader) LoadTexture(string, texture.WrapMode, texture.WrapMode) (texture.Handle, error) {
	return 0, errors.New("no such file")
}

func TestUploadTextureFailure(t *testing.T) {
	mesh, err := terrain.BuildFlatQuad(1)
	if err != nil {
		t.Fatalf("BuildFlatQuad: %v", err)
	}
	mem := NewMemory()
	if _, err := Upload(mem, failingLoader{}, mesh, Binding{Path: "cloud.jpg", Sampler: "texC"}); err == nil {
		t.Error("expected texture load failure to surface, got nil")
	}
}
