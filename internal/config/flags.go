package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and mesh validation")
	flagResolution = flag.Int("resolution", 0, "Terrain subdivisions per side")
	flagMode       = flag.String("mode", "", "Terrain mesh mode: indexed or strip")
	flagFreeCam    = flag.Bool("free-cam", false, "Start with the free camera")
	flagHeadless   = flag.Bool("headless", false, "Build meshes without opening a window")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWrite      = flag.String("write-config", "", "Write the effective config to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WritePath returns the path given via --write-config.
func WritePath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Terrain.CheckMesh = true
	}
	if *flagResolution != 0 {
		cfg.Terrain.Resolution = *flagResolution
	}
	if *flagMode != "" {
		if err := cfg.Terrain.Mode.UnmarshalText([]byte(*flagMode)); err != nil {
			return err
		}
	}
	if *flagFreeCam {
		cfg.Camera.Free = true
	}
	if *flagHeadless {
		cfg.Graphics.Headless = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	return nil
}
