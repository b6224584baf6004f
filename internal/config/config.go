// Package config handles terrain viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/megaquad/internal/engine/lighting"
	"github.com/Faultbox/megaquad/internal/engine/terrain"
	"github.com/Faultbox/megaquad/internal/engine/texture"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Clouds   CloudsConfig   `yaml:"clouds"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`

	source string
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	// Headless builds and registers the meshes in memory without opening a window.
	Headless      bool   `yaml:"headless"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// TerrainConfig holds terrain mesh and texture settings.
type TerrainConfig struct {
	Resolution    int           `yaml:"resolution"`
	Mode          terrain.Mode  `yaml:"mode"`
	MemoryLimitMB int64         `yaml:"memory_limit_mb"`
	Scale         [3]float32    `yaml:"scale"`
	AssetRoot     string        `yaml:"asset_root"`
	Elevation     TextureConfig `yaml:"elevation"`
	Surface       TextureConfig `yaml:"surface"`
	CheckMesh     bool          `yaml:"check_mesh"` // validate winding after building
	ShowNormals   bool          `yaml:"show_normals"`
	Sun           lighting.Sun  `yaml:"sun"`
}

// CloudsConfig holds the cloud overlay settings.
type CloudsConfig struct {
	Enabled bool          `yaml:"enabled"`
	Height  float32       `yaml:"height"`
	Texture TextureConfig `yaml:"texture"`
}

// TextureConfig names a texture file and how it wraps.
type TextureConfig struct {
	Path string           `yaml:"path"`
	Wrap texture.WrapMode `yaml:"wrap"`
}

// CameraConfig holds fly-over camera settings.
type CameraConfig struct {
	Free bool `yaml:"free"`
	// Period is the fly-over speed divisor in seconds.
	Period float32 `yaml:"period"`
	// Seed fixes the fly-over start phase. Zero picks a random phase.
	Seed uint64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         512,
			Height:        512,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Terrain: TerrainConfig{
			Resolution:    2000,
			Mode:          terrain.ModeIndexed,
			MemoryLimitMB: terrain.DefaultMemoryLimit >> 20,
			Scale:         [3]float32{20, 1, 10},
			AssetRoot:     "images/terrain",
			Elevation:     TextureConfig{Path: "elev.png", Wrap: texture.ClampToEdge},
			Surface:       TextureConfig{Path: "topo.jpg", Wrap: texture.Repeat},
			Sun:           lighting.Sun{Azimuth: 307, Elevation: 65},
		},
		Clouds: CloudsConfig{
			Enabled: true,
			Height:  1,
			Texture: TextureConfig{Path: "cloud.jpg", Wrap: texture.Repeat},
		},
		Camera: CameraConfig{
			Period: 6,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// GridParameters returns the terrain build parameters.
func (c *Config) GridParameters() terrain.GridParameters {
	return terrain.GridParameters{
		Resolution:  c.Terrain.Resolution,
		MemoryLimit: c.Terrain.MemoryLimitMB << 20,
	}
}

// Validate checks settings that would otherwise fail late, at build or draw time.
func (c *Config) Validate() error {
	if err := c.GridParameters().Validate(); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	if !c.Graphics.Headless && (c.Graphics.Width <= 0 || c.Graphics.Height <= 0) {
		return fmt.Errorf("window size %dx%d: %w", c.Graphics.Width, c.Graphics.Height, ErrInvalid)
	}
	for i, s := range c.Terrain.Scale {
		if s == 0 {
			return fmt.Errorf("terrain scale axis %d is zero: %w", i, ErrInvalid)
		}
	}
	if c.Terrain.Sun.Elevation < 0 || c.Terrain.Sun.Elevation > 90 {
		return fmt.Errorf("sun elevation %v outside [0, 90]: %w", c.Terrain.Sun.Elevation, ErrInvalid)
	}
	if c.Camera.Period <= 0 {
		return fmt.Errorf("camera period %v: %w", c.Camera.Period, ErrInvalid)
	}
	return nil
}
