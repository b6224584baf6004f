// Package lighting provides the directional light the terrain is shaded with.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/megaquad/pkg/math"
)

// Sun is a directional light given by compass angles in degrees.
type Sun struct {
	// Azimuth rotates around +Y, measured from +Z towards +X.
	Azimuth float32 `yaml:"azimuth"`
	// Elevation is the angle above the horizon, 0 to 90.
	Elevation float32 `yaml:"elevation"`
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	az := s.Azimuth * math32.Pi / 180
	el := s.Elevation * math32.Pi / 180
	sinAz, cosAz := math32.Sincos(az)
	sinEl, cosEl := math32.Sincos(el)
	return math.Vec3{
		X: cosEl * sinAz,
		Y: sinEl,
		Z: cosEl * cosAz,
	}
}
