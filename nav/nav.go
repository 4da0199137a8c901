// nav/nav.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package nav implements the per-aircraft kinematics: integrating
// position along the great circle and the rate-limited control laws
// that steer an aircraft toward its assigned altitude, speed and
// heading.
package nav

import (
	"fmt"

	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/math"
)

// FlightState holds an aircraft's current kinematic state. Everything is
// metric: metres, m/s and degrees true.
type FlightState struct {
	Position      math.Point2LL
	Altitude      float64
	Heading       float64
	Speed         float64
	VerticalSpeed float64
}

func (fs FlightState) String() string {
	return fmt.Sprintf("pos=%s alt=%.0fft hdg=%03.0f spd=%.0fkt vs=%.0ffpm", fs.Position.DDString(),
		math.MetresToFeet(fs.Altitude), fs.Heading, math.MPSToKnots(fs.Speed),
		math.MPSToFPM(fs.VerticalSpeed))
}

// Targets holds the assigned values that the control laws steer toward. A
// nil target means there is no assignment for that axis and the control
// law leaves it alone.
type Targets struct {
	Altitude *float64
	Speed    *float64
	Heading  *float64
}

// Nav couples an aircraft's flight state with its assignments.
type Nav struct {
	FlightState FlightState
	Targets     Targets
}

// MakeNav returns a Nav in the given state whose targets are its current
// altitude, speed and heading, so that nothing is pending.
func MakeNav(fs FlightState) Nav {
	fs.Heading = math.NormalizeHeading(fs.Heading)
	alt, spd, hdg := fs.Altitude, fs.Speed, fs.Heading
	return Nav{
		FlightState: fs,
		Targets:     Targets{Altitude: &alt, Speed: &spd, Heading: &hdg},
	}
}

func (nav *Nav) AssignAltitude(alt float64) {
	nav.Targets.Altitude = &alt
}

func (nav *Nav) AssignSpeed(spd float64) {
	nav.Targets.Speed = &spd
}

// AssignHeading normalizes hdg to [0,360) before assigning it.
func (nav *Nav) AssignHeading(hdg float64) {
	hdg = math.NormalizeHeading(hdg)
	nav.Targets.Heading = &hdg
}

func (nav *Nav) AssignedAltitude() (float64, bool) {
	if nav.Targets.Altitude == nil {
		return 0, false
	}
	return *nav.Targets.Altitude, true
}

func (nav *Nav) AssignedSpeed() (float64, bool) {
	if nav.Targets.Speed == nil {
		return 0, false
	}
	return *nav.Targets.Speed, true
}

func (nav *Nav) AssignedHeading() (float64, bool) {
	if nav.Targets.Heading == nil {
		return 0, false
	}
	return *nav.Targets.Heading, true
}

// UpdatePosition advances the aircraft dt seconds along its current
// heading and vertical speed. The horizontal step is taken on a sphere
// whose radius includes the mean altitude over the step.
//
// Unlike a plain altitude += vs*dt step, an aircraft converging on its
// assigned altitude stops there: it stays pinned at the assigned altitude
// while the altitude law brings its vertical speed to zero.
func (nav *Nav) UpdatePosition(dt float64) {
	fs := &nav.FlightState

	alt := fs.Altitude + fs.VerticalSpeed*dt
	if target, ok := nav.AssignedAltitude(); ok {
		// Never fly through the assigned altitude.
		if fs.VerticalSpeed > 0 && fs.Altitude <= target {
			alt = min(alt, target)
		} else if fs.VerticalSpeed < 0 && fs.Altitude >= target {
			alt = max(alt, target)
		}
	}

	fs.Position = math.Destination(fs.Position, fs.Speed*dt, fs.Heading, (fs.Altitude+alt)/2)
	fs.Altitude = alt
}

// UpdateControls runs the altitude, speed and heading control laws for a
// step of dt seconds. elapsed is only used for logging.
func (nav *Nav) UpdateControls(callsign string, perf *av.Performance, dt float64, elapsed float64) {
	if NavLogEnabled(NavLogState) {
		NavLog(callsign, elapsed, NavLogState, "%s", nav.FlightState)
	}

	nav.updateAltitude(callsign, perf, dt, elapsed)
	nav.updateSpeed(callsign, perf, dt, elapsed)
	nav.updateHeading(callsign, perf, dt, elapsed)
}

// TurnRadius returns the radius in metres of a turn flown at the given
// speed (m/s) and rate (degrees per second).
func TurnRadius(speed, turnRate float64) float64 {
	if turnRate <= 0 {
		return 0
	}
	return speed / math.Radians(turnRate)
}
