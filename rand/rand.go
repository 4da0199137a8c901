// rand/rand.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package rand provides a small, seedable PCG-based generator so that
// randomly-populated scenarios can be reproduced exactly.
package rand

import (
	"github.com/MichaelTJones/pcg"
)

const pcgStream = 0xda3e39cb94b95bdb

type Rand struct {
	r *pcg.PCG32
}

func New() Rand {
	return Rand{r: pcg.NewPCG32()}
}

// NewSeeded returns a generator that has already been seeded with s.
func NewSeeded(s int64) Rand {
	r := New()
	r.Seed(s)
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), pcgStream)
}

// Intn returns a value in [0,n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// Float64 returns a value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Range returns a value uniformly distributed in [lo,hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// SampleSlice returns a randomly-selected element of s; s must not be
// empty.
func SampleSlice[T any](r *Rand, s []T) T {
	return s[r.Intn(len(s))]
}
