// sim/aircraft.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	gomath "math"

	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/nav"
)

// Aircraft is a detached copy of everything the store knows about one
// aircraft; modifying it has no effect on the simulation.
type Aircraft struct {
	Index    int
	Callsign string
	Type     string
	Squawk   av.Squawk

	nav.Nav

	// Runway the aircraft is cleared to intercept the final approach
	// course for, if any.
	ClearedApproach string

	// History holds the trail of recent positions, newest first.
	History []math.Point2LL
}

// ImperialAircraft presents an aircraft in feet, knots and feet per
// minute, for display.
type ImperialAircraft struct {
	Index    int
	Callsign string
	Type     string
	Squawk   av.Squawk
	Position math.Point2LL

	Altitude      float64 // feet
	FlightLevel   int
	Heading       float64
	Speed         float64 // knots
	VerticalSpeed float64 // feet per minute

	TargetAltitude *float64 // feet
	TargetSpeed    *float64 // knots
	TargetHeading  *float64
}

func (ac *Aircraft) Imperial() *ImperialAircraft {
	fs := ac.FlightState
	ia := &ImperialAircraft{
		Index:         ac.Index,
		Callsign:      ac.Callsign,
		Type:          ac.Type,
		Squawk:        ac.Squawk,
		Position:      fs.Position,
		Altitude:      math.MetresToFeet(fs.Altitude),
		FlightLevel:   FlightLevel(fs.Altitude),
		Heading:       fs.Heading,
		Speed:         math.MPSToKnots(fs.Speed),
		VerticalSpeed: math.MPSToFPM(fs.VerticalSpeed),
	}
	if alt, ok := ac.AssignedAltitude(); ok {
		ft := math.MetresToFeet(alt)
		ia.TargetAltitude = &ft
	}
	if spd, ok := ac.AssignedSpeed(); ok {
		kts := math.MPSToKnots(spd)
		ia.TargetSpeed = &kts
	}
	if hdg, ok := ac.AssignedHeading(); ok {
		ia.TargetHeading = &hdg
	}
	return ia
}

// FlightLevel returns the altitude in hundreds of feet, rounded to the
// nearest one.
func FlightLevel(alt float64) int {
	return int(gomath.Round(math.MetresToFeet(alt) / 100))
}

// AircraftUpdate describes a set of changes to apply to an aircraft at
// once. Only the non-nil fields are applied, so zero is a perfectly good
// value for any of them.
type AircraftUpdate struct {
	Type          *string
	Squawk        *av.Squawk
	Position      *math.Point2LL
	Altitude      *float64
	Heading       *float64
	Speed         *float64
	VerticalSpeed *float64

	TargetAltitude *float64
	TargetSpeed    *float64
	TargetHeading  *float64
}
