// math/geodesy.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

// EarthRadius is the mean radius of the Earth, in metres. The functions
// below take an altitude offset that is added to it so that distances can
// be measured on the sphere an aircraft is actually flying on.
const EarthRadius = 6371000

// Distance returns the great-circle distance in metres between two points
// using the haversine formula.
// https://www.movable-type.co.uk/scripts/latlong.html
func Distance(a, b Point2LL, altitudeOffset float64) float64 {
	lat1, lat2 := Radians(a[1]), Radians(b[1])
	dlat, dlon := Radians(b[1]-a[1]), Radians(b[0]-a[0])

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	x = Clamp(x, 0, 1)
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	return (EarthRadius + altitudeOffset) * c
}

// NMDistance2LL returns the distance in nautical miles between two
// provided lat-long coordinates.
func NMDistance2LL(a, b Point2LL) float64 {
	return MetresToNM(Distance(a, b, 0))
}

// Bearing returns the initial bearing in degrees, [0,360), of the great
// circle from a to b.
func Bearing(a, b Point2LL) float64 {
	lat1, lat2 := Radians(a[1]), Radians(b[1])
	dlon := Radians(b[0] - a[0])

	y := gomath.Sin(dlon) * gomath.Cos(lat2)
	x := gomath.Cos(lat1)*gomath.Sin(lat2) - gomath.Sin(lat1)*gomath.Cos(lat2)*gomath.Cos(dlon)
	return NormalizeHeading(Degrees(gomath.Atan2(y, x)))
}

// Destination returns the point reached by travelling dist metres from p
// along the great circle with the given initial bearing.
func Destination(p Point2LL, dist, bearing, altitudeOffset float64) Point2LL {
	lat1, lon1 := Radians(p[1]), Radians(p[0])
	delta := dist / (EarthRadius + altitudeOffset) // angular distance
	theta := Radians(bearing)

	sinLat1, cosLat1 := gomath.Sincos(lat1)
	sinDelta, cosDelta := gomath.Sincos(delta)

	lat2 := SafeASin(sinLat1*cosDelta + cosLat1*sinDelta*gomath.Cos(theta))
	lon2 := lon1 + gomath.Atan2(gomath.Sin(theta)*sinDelta*cosLat1, cosDelta-sinLat1*gomath.Sin(lat2))

	return Point2LL{normalizeLongitude(Degrees(lon2)), Degrees(lat2)}
}

func normalizeLongitude(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	return gomath.Mod(lon+540, 360) - 180
}

// Intersection returns the point where the great circle leaving p1 with
// bearing brng1 meets the one leaving p2 with bearing brng2. ok is false
// if the paths are coincident or the intersection is ambiguous (both
// paths point away from it).
func Intersection(p1 Point2LL, brng1 float64, p2 Point2LL, brng2 float64) (isect Point2LL, ok bool) {
	phi1, lambda1 := Radians(p1[1]), Radians(p1[0])
	phi2, lambda2 := Radians(p2[1]), Radians(p2[0])
	theta13, theta23 := Radians(brng1), Radians(brng2)
	dphi, dlambda := phi2-phi1, lambda2-lambda1

	// angular distance p1-p2
	d12 := 2 * SafeASin(gomath.Sqrt(Sqr(gomath.Sin(dphi/2))+
		gomath.Cos(phi1)*gomath.Cos(phi2)*Sqr(gomath.Sin(dlambda/2))))
	if Abs(d12) < 1e-12 {
		return p1, true
	}

	// initial/final bearings between points
	cosThetaA := (gomath.Sin(phi2) - gomath.Sin(phi1)*gomath.Cos(d12)) / (gomath.Sin(d12) * gomath.Cos(phi1))
	cosThetaB := (gomath.Sin(phi1) - gomath.Sin(phi2)*gomath.Cos(d12)) / (gomath.Sin(d12) * gomath.Cos(phi2))
	thetaA := gomath.Acos(Clamp(cosThetaA, -1, 1))
	thetaB := gomath.Acos(Clamp(cosThetaB, -1, 1))

	theta12, theta21 := thetaA, 2*gomath.Pi-thetaB
	if gomath.Sin(dlambda) <= 0 {
		theta12, theta21 = 2*gomath.Pi-thetaA, thetaB
	}

	alpha1 := theta13 - theta12 // angle 2-1-3
	alpha2 := theta21 - theta23 // angle 1-2-3

	if gomath.Sin(alpha1) == 0 && gomath.Sin(alpha2) == 0 {
		return Point2LL{}, false // infinite intersections
	}
	if gomath.Sin(alpha1)*gomath.Sin(alpha2) < 0 {
		return Point2LL{}, false // ambiguous intersection (antipodal/360°)
	}

	cosAlpha3 := -gomath.Cos(alpha1)*gomath.Cos(alpha2) + gomath.Sin(alpha1)*gomath.Sin(alpha2)*gomath.Cos(d12)
	d13 := gomath.Atan2(gomath.Sin(d12)*gomath.Sin(alpha1)*gomath.Sin(alpha2), gomath.Cos(alpha2)+gomath.Cos(alpha1)*cosAlpha3)

	phi3 := SafeASin(gomath.Sin(phi1)*gomath.Cos(d13) + gomath.Cos(phi1)*gomath.Sin(d13)*gomath.Cos(theta13))
	dlambda13 := gomath.Atan2(gomath.Sin(theta13)*gomath.Sin(d13)*gomath.Cos(phi1), gomath.Cos(d13)-gomath.Sin(phi1)*gomath.Sin(phi3))

	return Point2LL{normalizeLongitude(Degrees(lambda1 + dlambda13)), Degrees(phi3)}, true
}

// DistanceToIntercept returns the distance in metres that an aircraft at
// p flying heading hdg must travel to cross the course line through fix
// with the given bearing (e.g., a localizer). ok is false if the paths do
// not meet ahead of the aircraft.
func DistanceToIntercept(p Point2LL, hdg float64, fix Point2LL, course float64) (float64, bool) {
	isect, ok := Intersection(p, hdg, fix, OppositeHeading(course))
	if !ok {
		// The approach course may also be extended beyond the fix.
		if isect, ok = Intersection(p, hdg, fix, course); !ok {
			return 0, false
		}
	}

	d := Distance(p, isect, 0)
	if d > EarthRadius*gomath.Pi/2 {
		return 0, false // the far side of the world
	}
	if d > 1 && HeadingDifference(Bearing(p, isect), hdg) > 90 {
		return 0, false // behind us
	}
	return d, true
}
