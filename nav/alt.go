// nav/alt.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	gomath "math"

	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/math"
)

var (
	// Within this distance of the assigned altitude the aircraft is
	// considered to be level at it.
	AltitudeTolerance = math.FeetToMetres(5)
	// Altitude errors beyond this all command the maximum rate.
	altitudeErrorLimit = math.FeetToMetres(100)
)

func (nav *Nav) updateAltitude(callsign string, perf *av.Performance, dt float64, elapsed float64) {
	target, ok := nav.AssignedAltitude()
	if !ok {
		return
	}
	fs := &nav.FlightState
	accelUp, accelDown := perf.VerticalAcceleration()

	NavLog(callsign, elapsed, NavLogAltitude, "target=%.0f current=%.0f rate=%.0f",
		math.MetresToFeet(target), math.MetresToFeet(fs.Altitude), math.MPSToFPM(fs.VerticalSpeed))

	diff := target - fs.Altitude
	if math.Abs(diff) <= AltitudeTolerance {
		// Level off; once we've stopped, sit exactly on the altitude
		// rather than drifting toward it forever.
		fs.VerticalSpeed = rateLimitVerticalSpeed(fs.VerticalSpeed, 0, accelUp, accelDown, dt)
		if fs.VerticalSpeed == 0 {
			fs.Altitude = target
		}
		return
	}

	// The error is mapped through tan over [-pi/4, pi/4]: small errors
	// ask for little more than the minimum rate, and the full climb or
	// descent rate is reached when 100' or more away.
	t := gomath.Tan(math.Clamp(diff, -altitudeErrorLimit, altitudeErrorLimit) / altitudeErrorLimit * gomath.Pi / 4)
	ceiling := perf.Rate.Climb
	if diff < 0 {
		ceiling = perf.Rate.Descent
	}
	desired := math.Sign(diff) * (perf.Rate.Minimum + math.Abs(t)*(ceiling-perf.Rate.Minimum))

	fs.VerticalSpeed = rateLimitVerticalSpeed(fs.VerticalSpeed, desired, accelUp, accelDown, dt)
}

// rateLimitVerticalSpeed moves vs toward desired, increasing it by at
// most accelUp*dt and decreasing it by at most |accelDown|*dt.
func rateLimitVerticalSpeed(vs, desired, accelUp, accelDown, dt float64) float64 {
	if desired > vs {
		return min(vs+accelUp*dt, desired)
	}
	return max(vs-math.Abs(accelDown)*dt, desired)
}
