package core

import (
	"math"
)

// FNV-1a parameters (64-bit)
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Fingerprint computes an order-sensitive FNV-1a hash over the raw
// IEEE-754 bit pattern of each value. Two arrays fingerprint equal only
// when they contain the same bits in the same order, which is what the
// result cache keys on.
func Fingerprint(data []float64) uint64 {
	hash := uint64(fnvOffset64)
	for _, v := range data {
		bits := math.Float64bits(v)
		for shift := 0; shift < 64; shift += 8 {
			hash ^= (bits >> shift) & 0xff
			hash *= fnvPrime64
		}
	}
	return hash
}
