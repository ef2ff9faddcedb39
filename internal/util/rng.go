package util

import (
	"math/rand"

	"vecmath/internal/vector"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// RandVector2 returns a vector with each axis uniform in [-span, span).
func RandVector2(r *rand.Rand, span float64) vector.Vector2 {
	return vector.Vector2{X: coord(r, span), Y: coord(r, span)}
}

func RandVector3(r *rand.Rand, span float64) vector.Vector3 {
	return vector.Vector3{X: coord(r, span), Y: coord(r, span), Z: coord(r, span)}
}

func coord(r *rand.Rand, span float64) float64 {
	return (r.Float64()*2 - 1) * span
}
