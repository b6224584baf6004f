// Package main is the entry point for the megaquad terrain viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/megaquad/internal/config"
	"github.com/Faultbox/megaquad/internal/engine/geometry"
	"github.com/Faultbox/megaquad/internal/engine/landscape"
	"github.com/Faultbox/megaquad/internal/logger"
	"github.com/Faultbox/megaquad/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== megaquad ===")
	if src := cfg.Source(); src != "" {
		logger.Info("config loaded", zap.String("path", src))
	} else {
		logger.Info("no config file, using defaults")
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.WritePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
	}

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	l, err := landscape.Build(cfg)
	if err != nil {
		return err
	}

	if cfg.Graphics.Headless {
		mem := geometry.NewMemory()
		h, err := l.Upload(mem, mem, mem)
		if err != nil {
			return err
		}
		logger.Info("headless upload complete",
			zap.Int("meshes", mem.Len()),
			zap.Int("registry_calls", mem.Calls),
			zap.Uint32("terrain", uint32(h.Terrain)),
		)
		return nil
	}

	v, err := viewer.New(cfg, l)
	if err != nil {
		return err
	}
	defer v.Close()

	return v.Run()
}
