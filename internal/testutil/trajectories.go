package testutil

import (
	"math"
	"math/rand"
)

// NewRand returns a generator seeded for reproducible fixtures. Tests own the
// generator and pass it explicitly; nothing here touches the global source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SignWalk generates a random walk of independent +-step moves starting at 0.
func SignWalk(rng *rand.Rand, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := 1; i < length; i++ {
		if rng.Intn(2) == 0 {
			out[i] = out[i-1] + step
		} else {
			out[i] = out[i-1] - step
		}
	}
	return out
}

// GaussianWalk generates a random walk with normally distributed steps of
// standard deviation sigma, starting at start.
func GaussianWalk(rng *rand.Rand, start, sigma float64, length int) []float64 {
	out := make([]float64, length)
	if length == 0 {
		return out
	}
	out[0] = start
	for i := 1; i < length; i++ {
		out[i] = out[i-1] + rng.NormFloat64()*sigma
	}
	return out
}

// ConstantVelocity generates x[k] = start + v*k.
func ConstantVelocity(start, v float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + v*float64(i)
	}
	return out
}

// Fold maps every sample into [0, box) with a floored modulo.
func Fold(x []float64, box float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - box*math.Floor(v/box)
	}
	return out
}

// ScatterImages shifts every sample by a random whole number of box lengths
// in [-maxImages, maxImages]. The result has the same periodic images as x
// but consecutive samples may be many boxes apart.
func ScatterImages(rng *rand.Rand, x []float64, box float64, maxImages int) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		n := rng.Intn(2*maxImages+1) - maxImages
		out[i] = v + float64(n)*box
	}
	return out
}
