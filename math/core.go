// math/core.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Degrees converts an angle expressed in radians to degrees
func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

// Radians converts an angle expressed in degrees to radians
func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

// SafeASin clamps its argument to [-1,1] so that accumulated round-off
// never turns into a NaN.
func SafeASin(a float64) float64 {
	return gomath.Asin(Clamp(a, -1, 1))
}

func Sign[V constraints.Signed | constraints.Float](v V) V {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Approach moves cur toward target by at most step, landing exactly on
// target rather than overshooting it.
func Approach(cur, target, step float64) float64 {
	if d := target - cur; Abs(d) <= step {
		return target
	} else if d > 0 {
		return cur + step
	} else {
		return cur - step
	}
}
