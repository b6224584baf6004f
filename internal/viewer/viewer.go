// Package viewer runs the interactive terrain fly-over.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/megaquad/internal/config"
	"github.com/Faultbox/megaquad/internal/engine/camera"
	"github.com/Faultbox/megaquad/internal/engine/debug"
	"github.com/Faultbox/megaquad/internal/engine/input"
	"github.com/Faultbox/megaquad/internal/engine/landscape"
	"github.com/Faultbox/megaquad/internal/engine/renderer"
	"github.com/Faultbox/megaquad/internal/engine/scene"
	"github.com/Faultbox/megaquad/internal/engine/window"
	"github.com/Faultbox/megaquad/internal/logger"
)

var log = logger.Named("viewer")

// Title is the window title.
const Title = "megaquad"

// Viewer is the main viewer instance.
type Viewer struct {
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	shots    *debug.Screenshots

	flyover *camera.Flyover
	orbit   *camera.OrbitCamera
	freeCam bool
	fitted  bool
}

// New opens the window and uploads l.
func New(cfg *config.Config, l *landscape.Landscape) (*Viewer, error) {
	v := &Viewer{
		input:   input.New(),
		shots:   debug.NewScreenshots(cfg.Graphics.ScreenshotDir, Title),
		orbit:   camera.NewOrbitCamera(),
		freeCam: cfg.Camera.Free,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window created.
	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.DefaultConfig(w, h))
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.scene, err = scene.New(scene.Config{
		TextureRoot: cfg.Terrain.AssetRoot,
		Scale:       cfg.Terrain.Scale,
		Sun:         cfg.Terrain.Sun,
		ShowNormals: cfg.Terrain.ShowNormals,
	}, l)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	phase := camera.PhaseFromSeed(cfg.Camera.Seed)
	v.flyover = camera.NewFlyover(cfg.Terrain.Scale[0], cfg.Terrain.Scale[2], cfg.Camera.Period, phase)
	log.Debug("fly-over path", zap.Float32("phase", phase), zap.Float32("period", cfg.Camera.Period))

	log.Info("viewer initialized")
	return v, nil
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (v *Viewer) Run() error {
	v.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		if v.freeCam {
			v.moveOrbit(dt)
		}

		if err := v.render(float32(now.Sub(start).Seconds())); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			log.Debug("fps", zap.Int("count", frameCount), zap.Duration("frame", time.Duration(dt*float32(time.Second))))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the scene, renderer and window in reverse creation order.
func (v *Viewer) Close() {
	log.Info("closing viewer")

	if v.scene != nil {
		v.scene.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.DrawableSize())
		case input.EventMouseMove:
			if v.freeCam && v.input.Dragging() {
				v.orbit.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
			}
		case input.EventMouseWheel:
			if v.freeCam {
				v.orbit.HandleZoom(float32(e.DeltaY))
			}
		}
	}

	if v.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		v.running = false
	}
	if v.input.IsKeyPressed(sdl.SCANCODE_N) {
		v.scene.ShowNormals = !v.scene.ShowNormals
		log.Info("show normals", zap.Bool("enabled", v.scene.ShowNormals))
	}
	if v.input.IsKeyPressed(sdl.SCANCODE_SPACE) {
		v.freeCam = !v.freeCam
		log.Info("free camera", zap.Bool("enabled", v.freeCam))
	}
}

func (v *Viewer) moveOrbit(dt float32) {
	var forward, right, up float32
	if v.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_E) {
		up++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_Q) {
		up--
	}
	// Movement speed is tuned for 60 frames per second.
	k := dt * 60
	v.orbit.HandleMovement(forward*k, right*k, up*k)
}

func (v *Viewer) render(t float32) error {
	var cam camera.Camera = v.flyover
	if v.freeCam {
		if !v.fitted {
			b := v.scene.Bounds()
			v.orbit.FitToBounds(b.Min, b.Max)
			v.fitted = true
		}
		cam = v.orbit
	}

	view, err := cam.View(t)
	if err != nil {
		// Keep drawing; LookAt already fell back to the identity view.
		log.Warn("degenerate camera", zap.Error(err))
	}

	v.renderer.Begin()
	if err := v.scene.Render(view, v.renderer.Projection()); err != nil {
		return err
	}
	return v.renderer.End()
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.SavePixels(pixels, w, h)
	if err != nil {
		log.Warn("screenshot failed", zap.Error(err))
		return
	}
	log.Info("screenshot saved", zap.String("path", path))
}
