package testkit

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian draws n samples from N(mean, std) with a fixed seed so tests
// and the demo command are reproducible.
func Gaussian(n int, mean, std float64, seed int64) []float64 {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: std,
		Src:   rand.NewPCG(uint64(seed), 0),
	}

	sample := make([]float64, n)
	for i := range sample {
		sample[i] = dist.Rand()
	}
	return sample
}

// Shifted returns a copy of sample with a constant added to every value
func Shifted(sample []float64, offset float64) []float64 {
	out := make([]float64, len(sample))
	for i, v := range sample {
		out[i] = v + offset
	}
	return out
}

// Constant returns n copies of the same value
func Constant(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns n values climbing linearly from start by step
func Ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
