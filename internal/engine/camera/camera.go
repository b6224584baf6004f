// Package camera provides the fly-over and free orbit cameras.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/megaquad/pkg/math"
)

// Camera produces a view matrix for a point in time, in seconds.
type Camera interface {
	View(t float32) (math.Mat4, error)
}

// Flyover sweeps back and forth across the terrain on a fixed path.
// At angle θ = t/Period + Phase the eye sits at
// (Center.X + Radius·sin θ, Height + Bob·cos θ, Center.Z − |Radius·sin θ|)
// and looks at Target.
type Flyover struct {
	Center math.Vec3
	Target math.Vec3

	Radius float32
	Height float32
	Bob    float32

	// Period divides time, larger is slower.
	Period float32
	// Phase offsets the start of the path, in radians.
	Phase float32
}

// NewFlyover creates a fly-over path for terrain scaled to sx by sz.
func NewFlyover(sx, sz, period, phase float32) *Flyover {
	return &Flyover{
		Center: math.Vec3{X: sx / 2},
		Target: math.Vec3{X: sx / 2, Z: -sz / 2},
		Radius: 4,
		Height: 1.2,
		Bob:    0.5,
		Period: period,
		Phase:  phase,
	}
}

// Eye returns the camera position at time t.
func (f *Flyover) Eye(t float32) math.Vec3 {
	theta := t/f.Period + f.Phase
	s, c := math32.Sincos(theta)
	return math.Vec3{
		X: f.Center.X + s*f.Radius,
		Y: f.Height + c*f.Bob,
		Z: f.Center.Z - math32.Abs(s*f.Radius),
	}
}

// View implements Camera.
func (f *Flyover) View(t float32) (math.Mat4, error) {
	return math.LookAt(f.Eye(t), f.Target, math.Up)
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera sized for a terrain a few dozen units across.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        12,
		RotationX:       0.6,
		MinDistance:     0.5,
		MaxDistance:     100,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinP, cosP := math32.Sincos(c.RotationX)
	sinY, cosY := math32.Sincos(c.RotationY)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cosP * sinY,
		Y: c.Distance * sinP,
		Z: c.Distance * cosP * cosY,
	})
}

// View implements Camera. The orbit camera does not move on its own.
func (c *OrbitCamera) View(float32) (math.Mat4, error) {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point. forward and right are in the
// ground plane relative to the current yaw.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01
	sinY, cosY := math32.Sincos(c.RotationY)

	c.Center.X += (-sinY*forward + cosY*right) * speed
	c.Center.Z += (-cosY*forward - sinY*right) * speed
	c.Center.Y += up * speed
}

// FitToBounds centers the camera on a box and backs off far enough to see it.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	size := max.Sub(min)
	c.Distance = clamp(math32.Max(size.X, size.Z), c.MinDistance, c.MaxDistance)
	c.RotationX = clamp(0.6, c.MinPitch, c.MaxPitch)
	c.RotationY = 0
}

func clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
