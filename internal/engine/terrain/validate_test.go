package terrain

import (
	"errors"
	"testing"

	"github.com/Faultbox/megaquad/pkg/math"
)

func quadMesh(indices ...uint32) *Mesh {
	return &Mesh{
		Kind: Triangles,
		Vertices: []Vertex{
			{Position: math.Vec3{X: 0, Y: 0, Z: 0}},
			{Position: math.Vec3{X: 1, Y: 0, Z: 0}},
			{Position: math.Vec3{X: 1, Y: 0, Z: -1}},
			{Position: math.Vec3{X: 0, Y: 0, Z: -1}},
		},
		Indices: indices,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    *Mesh
		wantErr error
	}{
		{"valid", quadMesh(0, 1, 2, 0, 2, 3), nil},
		{"out of range", quadMesh(0, 1, 2, 0, 2, 4), ErrMalformedMesh},
		{"mixed winding", quadMesh(0, 1, 2, 0, 3, 2), ErrMalformedMesh},
		{"degenerate", quadMesh(0, 1, 2, 0, 0, 3), math.ErrDegenerateGeometry},
		{"partial triangle", quadMesh(0, 1, 2, 0), ErrMalformedMesh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mesh)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateDegenerateListIsMalformed(t *testing.T) {
	err := Validate(quadMesh(0, 0, 3))
	if !errors.Is(err, ErrMalformedMesh) {
		t.Errorf("expected ErrMalformedMesh, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"indexed", ModeIndexed, false},
		{"STRIP", ModeStrip, false},
		{"", ModeIndexed, false},
		{"fan", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseMode(%q): expected ErrInvalidArgument, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
