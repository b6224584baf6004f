// Package landscape assembles the terrain grid and cloud layer described by
// the viewer config and registers them with a geometry registry.
package landscape

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/megaquad/internal/config"
	"github.com/Faultbox/megaquad/internal/engine/geometry"
	"github.com/Faultbox/megaquad/internal/engine/terrain"
	"github.com/Faultbox/megaquad/internal/logger"
)

var log = logger.Named("landscape")

// Sampler names read by the terrain and cloud programs.
const (
	ElevationSampler = "texE"
	SurfaceSampler   = "texT"
	CloudSampler     = "texC"
)

// Landscape holds the built meshes and the textures each one samples.
type Landscape struct {
	Terrain         *terrain.Mesh
	TerrainBindings []geometry.Binding

	// Clouds is nil when the cloud layer is disabled.
	Clouds        *terrain.Mesh
	CloudBindings []geometry.Binding
}

// Handles identifies an uploaded landscape.
type Handles struct {
	Terrain geometry.Handle
	Clouds  geometry.Handle
	// HasClouds reports whether Clouds is valid.
	HasClouds bool
}

// Build builds the terrain mesh with the configured strategy and, if
// enabled, the cloud quad. With Terrain.CheckMesh set the terrain is
// validated before it is returned.
func Build(cfg *config.Config) (*Landscape, error) {
	start := time.Now()
	mesh, err := terrain.Build(cfg.Terrain.Mode, cfg.GridParameters())
	if err != nil {
		return nil, fmt.Errorf("build terrain: %w", err)
	}
	log.Info("terrain built",
		zap.Stringer("mode", cfg.Terrain.Mode),
		zap.Int("resolution", cfg.Terrain.Resolution),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", mesh.IndexCount()),
		zap.Duration("took", time.Since(start)),
	)

	if cfg.Terrain.CheckMesh {
		if err := terrain.Validate(mesh); err != nil {
			return nil, fmt.Errorf("check terrain: %w", err)
		}
		log.Debug("terrain mesh checked")
	}

	l := &Landscape{
		Terrain: mesh,
		TerrainBindings: []geometry.Binding{
			binding(cfg.Terrain.Elevation, ElevationSampler),
			binding(cfg.Terrain.Surface, SurfaceSampler),
		},
	}

	if cfg.Clouds.Enabled {
		l.Clouds, err = terrain.BuildFlatQuad(cfg.Clouds.Height)
		if err != nil {
			return nil, fmt.Errorf("build clouds: %w", err)
		}
		l.CloudBindings = []geometry.Binding{binding(cfg.Clouds.Texture, CloudSampler)}
	}
	return l, nil
}

// Upload registers the terrain with terrainReg and the clouds, if any, with
// cloudReg. The two may be the same registry.
//
// If the cloud layer fails the returned Handles still carry the registered
// terrain, with HasClouds false, so the caller can release or keep it.
func (l *Landscape) Upload(terrainReg, cloudReg geometry.Registry, loader geometry.TextureLoader) (Handles, error) {
	var h Handles
	var err error

	h.Terrain, err = geometry.Upload(terrainReg, loader, l.Terrain, l.TerrainBindings...)
	if err != nil {
		return Handles{}, fmt.Errorf("terrain: %w", err)
	}

	if l.Clouds != nil {
		h.Clouds, err = geometry.Upload(cloudReg, loader, l.Clouds, l.CloudBindings...)
		if err != nil {
			return Handles{Terrain: h.Terrain}, fmt.Errorf("clouds: %w", err)
		}
		h.HasClouds = true
	}
	return h, nil
}

func binding(tc config.TextureConfig, sampler string) geometry.Binding {
	return geometry.Binding{Path: tc.Path, Sampler: sampler, WrapS: tc.Wrap, WrapT: tc.Wrap}
}
