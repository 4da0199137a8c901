// nav/lateral.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/math"
)

func (nav *Nav) updateHeading(callsign string, perf *av.Performance, dt float64, elapsed float64) {
	target, ok := nav.AssignedHeading()
	if !ok {
		return
	}
	fs := &nav.FlightState

	turn := math.HeadingSignedTurn(fs.Heading, target)
	turnRate := perf.Rate.Turn * dt
	NavLog(callsign, elapsed, NavLogHeading, "target=%.0f current=%.0f turn=%.1f rate=%.1f",
		target, fs.Heading, turn, turnRate)

	if math.Abs(turn) <= turnRate {
		fs.Heading = target
		return
	}

	// Always take the shorter way around.
	fs.Heading = math.NormalizeHeading(fs.Heading + math.Clamp(turn, -turnRate, turnRate))
}

// DistanceToIntercept returns the distance the aircraft must fly on its
// current heading before it crosses the course through fix, or false if
// it never will.
func (nav *Nav) DistanceToIntercept(fix math.Point2LL, course float64) (float64, bool) {
	return math.DistanceToIntercept(nav.FlightState.Position, nav.FlightState.Heading, fix, course)
}
