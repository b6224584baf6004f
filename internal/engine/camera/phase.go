package camera

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/megaquad/pkg/math"
)

// RandomPhase draws a fly-over start phase in [0, 2π) from src.
func RandomPhase(src math.Source) float32 {
	return math.RandomRange(src, 0, 2*math32.Pi)
}

// PhaseFromSeed returns a reproducible phase for a non-zero seed and a
// fresh random one for zero.
func PhaseFromSeed(seed uint64) float32 {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return RandomPhase(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}
