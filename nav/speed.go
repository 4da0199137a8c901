// nav/speed.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/math"
)

func (nav *Nav) updateSpeed(callsign string, perf *av.Performance, dt float64, elapsed float64) {
	target, ok := nav.AssignedSpeed()
	if !ok {
		return
	}

	NavLog(callsign, elapsed, NavLogSpeed, "target=%.0f current=%.0f", math.MPSToKnots(target),
		math.MPSToKnots(nav.FlightState.Speed))

	nav.FlightState.Speed = math.Approach(nav.FlightState.Speed, target, perf.HorizontalAcceleration()*dt)
}
