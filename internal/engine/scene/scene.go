// Package scene draws the terrain and its cloud layer with OpenGL.
package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/megaquad/internal/engine/landscape"
	"github.com/Faultbox/megaquad/internal/engine/lighting"
	"github.com/Faultbox/megaquad/internal/engine/scene/shaders"
	"github.com/Faultbox/megaquad/internal/engine/shader"
	"github.com/Faultbox/megaquad/internal/engine/terrain"
	"github.com/Faultbox/megaquad/internal/logger"
	"github.com/Faultbox/megaquad/pkg/math"
)

var log = logger.Named("scene")

// Config contains scene options.
type Config struct {
	// TextureRoot resolves relative texture paths.
	TextureRoot string
	// Scale stretches the unit grid into world space.
	Scale       [3]float32
	Sun         lighting.Sun
	ShowNormals bool
}

// Scene owns the GPU resources of one landscape.
type Scene struct {
	terrainProgram *shader.Program
	cloudProgram   *shader.Program
	registry       *Registry
	textures       *TextureLoader

	handles  landscape.Handles
	model    math.Mat4
	bounds   terrain.Bounds
	lightDir math.Vec3

	// ShowNormals colours the terrain by its surface normal.
	ShowNormals bool
}

// New compiles the programs and uploads l. It must run on the GL thread.
func New(cfg Config, l *landscape.Landscape) (*Scene, error) {
	s := &Scene{
		registry:    NewRegistry(),
		textures:    NewTextureLoader(cfg.TextureRoot),
		model:       math.Scale(cfg.Scale[0], cfg.Scale[1], cfg.Scale[2]),
		lightDir:    cfg.Sun.Direction(),
		ShowNormals: cfg.ShowNormals,
	}

	var err error
	s.terrainProgram, err = shader.New("terrain", shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, err
	}
	s.cloudProgram, err = shader.New("clouds", shaders.CloudsVertexShader, shaders.CloudsFragmentShader)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.handles, err = l.Upload(
		s.registry.WithProgram(s.terrainProgram),
		s.registry.WithProgram(s.cloudProgram),
		s.textures,
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("upload landscape: %w", err)
	}

	b := l.Terrain.Bounds()
	lo, hi := s.model.TransformPoint(b.Min), s.model.TransformPoint(b.Max)
	s.bounds = terrain.Bounds{
		Min: math.Vec3{X: math32.Min(lo.X, hi.X), Y: math32.Min(lo.Y, hi.Y), Z: math32.Min(lo.Z, hi.Z)},
		Max: math.Vec3{X: math32.Max(lo.X, hi.X), Y: math32.Max(lo.Y, hi.Y), Z: math32.Max(lo.Z, hi.Z)},
	}

	log.Info("scene ready",
		zap.Bool("clouds", s.handles.HasClouds),
		zap.Float32s("scale", cfg.Scale[:]),
	)
	return s, nil
}

// Bounds returns the world-space bounds of the flat terrain grid.
func (s *Scene) Bounds() terrain.Bounds {
	return s.bounds
}

// Render draws the terrain and then the blended cloud layer.
func (s *Scene) Render(view, projection math.Mat4) error {
	modelView := view.Mul(s.model)

	s.terrainProgram.Use()
	s.terrainProgram.SetMat4("Projection", projection)
	s.terrainProgram.SetMat4("ModelView", modelView)
	s.terrainProgram.SetBool("showNorm", s.ShowNormals)
	s.terrainProgram.SetVec3("lightDir", s.lightDir)
	if err := s.registry.Draw(s.handles.Terrain); err != nil {
		return fmt.Errorf("draw terrain: %w", err)
	}

	if s.handles.HasClouds {
		s.cloudProgram.Use()
		s.cloudProgram.SetMat4("Projection", projection)
		s.cloudProgram.SetMat4("ModelView", modelView)
		if err := s.registry.Draw(s.handles.Clouds); err != nil {
			return fmt.Errorf("draw clouds: %w", err)
		}
	}
	return nil
}

// Close releases every GL object the scene created.
func (s *Scene) Close() {
	s.registry.Close()
	s.textures.Close()
	if s.terrainProgram != nil {
		s.terrainProgram.Delete()
	}
	if s.cloudProgram != nil {
		s.cloudProgram.Delete()
	}
}
