package math

import "github.com/chewxy/math32"

// Source is a uniform generator over [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// RandomRange returns a value uniformly distributed in [low, high).
// When low == high it returns low without drawing from src.
func RandomRange(src Source, low, high float32) float32 {
	if low == high {
		return low
	}
	n := low + float32(src.Float64())*(high-low)
	// float32 rounding can land exactly on high.
	if low < high && n >= high {
		return math32.Nextafter(high, low)
	}
	if low > high && n <= high {
		return math32.Nextafter(high, low)
	}
	return n
}
