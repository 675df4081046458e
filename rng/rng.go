package rng

import (
	"fmt"
	"math"

	fp "github.com/npillmayer/fpcore"
)

// RNG is an immutable pseudo-random number generator.
// NextInt returns the same result every time it is called on the same RNG.
type RNG interface {
	NextInt() (int32, RNG)
}

// LCG parameters, as used by java.util.Random.
const (
	multiplier = 0x5DEECE66D
	increment  = 0xB
	mask       = 1<<48 - 1
)

// SimpleRNG is a linear congruential generator. The zero value is a valid
// generator with seed 0.
type SimpleRNG struct {
	Seed int64
}

var _ RNG = SimpleRNG{}

// NextInt computes the next seed and returns bits 47…16 of it as a signed
// 32-bit integer, together with a generator holding the new seed.
func (r SimpleRNG) NextInt() (int32, RNG) {
	newSeed := (r.Seed*multiplier + increment) & mask // overflow wraps, mask keeps 48 bits
	return int32(newSeed >> 16), SimpleRNG{Seed: newSeed}
}

func (r SimpleRNG) String() string {
	return fmt.Sprintf("SimpleRNG(%d)", r.Seed)
}

// Int is NextInt as a function.
func Int(r RNG) (int32, RNG) {
	return r.NextInt()
}

// NonNegativeInt returns a random integer in [0, MaxInt32].
// math.MinInt32 has no positive counterpart and is mapped to 0.
func NonNegativeInt(r RNG) (int32, RNG) {
	n, next := r.NextInt()
	if n == math.MinInt32 {
		return 0, next
	}
	if n < 0 {
		return -n, next
	}
	return n, next
}

// Double returns a random float64 in [0, 1).
func Double(r RNG) (float64, RNG) {
	n, next := NonNegativeInt(r)
	return float64(n) / (math.MaxInt32 + 1.0), next
}

// Double3 returns three random doubles, generated in order.
func Double3(r RNG) (fp.Triple[float64, float64, float64], RNG) {
	d1, r2 := Double(r)
	d2, r3 := Double(r2)
	d3, r4 := Double(r3)
	return fp.T3(d1, d2, d3), r4
}

// IntDouble returns a random integer followed by a random double.
func IntDouble(r RNG) (fp.Pair[int32, float64], RNG) {
	n, r2 := r.NextInt()
	d, r3 := Double(r2)
	return fp.P(n, d), r3
}
