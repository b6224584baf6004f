package lighting

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/megaquad/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name string
		sun  Sun
		want math.Vec3
	}{
		{"zenith", Sun{Azimuth: 123, Elevation: 90}, math.Vec3{Y: 1}},
		{"south horizon", Sun{Azimuth: 0, Elevation: 0}, math.Vec3{Z: 1}},
		{"east horizon", Sun{Azimuth: 90, Elevation: 0}, math.Vec3{X: 1}},
		{"45 up", Sun{Azimuth: 180, Elevation: 45}, math.Vec3{Y: math32.Sqrt2 / 2, Z: -math32.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sun.Direction()
			d := got.Sub(tt.want)
			if d.Length() > 1e-5 {
				t.Errorf("Direction() = %+v, want %+v", got, tt.want)
			}
			if l := got.Length(); math32.Abs(l-1) > 1e-5 {
				t.Errorf("length = %v, want 1", l)
			}
		})
	}
}
