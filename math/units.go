// math/units.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

// Everything inside the simulation is metric; these convert to and from
// the units that controllers actually talk in.
const (
	FeetPerMetre    = 3.28084
	NMPerMetre      = 0.000539957
	KnotsPerMPS     = 3600 * NMPerMetre
	StandardGravity = 9.80665 // m/s^2 per G
	NMPerLatitude   = 60
)

func MetresToFeet(m float64) float64  { return m * FeetPerMetre }
func FeetToMetres(ft float64) float64 { return ft / FeetPerMetre }

func MetresToNM(m float64) float64  { return m * NMPerMetre }
func NMToMetres(nm float64) float64 { return nm / NMPerMetre }

func KnotsToMPS(kts float64) float64 { return kts / KnotsPerMPS }
func MPSToKnots(mps float64) float64 { return mps * KnotsPerMPS }

// FPMToMPS converts feet per minute to metres per second.
func FPMToMPS(fpm float64) float64 { return FeetToMetres(fpm / 60) }
func MPSToFPM(mps float64) float64 { return MetresToFeet(mps * 60) }

// GForceToVerticalAcceleration converts a load factor to a vertical
// acceleration in m/s^2. With applyGravity set, the G value is taken to
// include the 1G that level flight already requires, so 1.0 maps to no
// acceleration at all.
func GForceToVerticalAcceleration(g float64, applyGravity bool) float64 {
	if applyGravity {
		g -= 1
	}
	return g * StandardGravity
}

// VerticalAccelerationToGForce is the inverse of
// GForceToVerticalAcceleration.
func VerticalAccelerationToGForce(mps2 float64, applyGravity bool) float64 {
	g := mps2 / StandardGravity
	if applyGravity {
		g += 1
	}
	return g
}

func GForceToMetresPerSecondSquared(g float64) float64 { return g * StandardGravity }

func DMSToDecimalDegrees(degrees, minutes int, seconds float64) float64 {
	return float64(degrees) + float64(minutes)/60 + seconds/3600
}

// DecimalDegreesToDMS splits a non-negative angle into whole degrees,
// whole minutes and seconds rounded to the millisecond.
func DecimalDegreesToDMS(dd float64) (degrees, minutes int, seconds float64) {
	ms := gomath.Round(dd * 3600 * 1000)
	degrees = int(ms / (3600 * 1000))
	ms -= float64(degrees) * 3600 * 1000
	minutes = int(ms / (60 * 1000))
	ms -= float64(minutes) * 60 * 1000
	seconds = ms / 1000
	return
}
