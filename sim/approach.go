// sim/approach.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"log/slog"
	gomath "math"

	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/nav"
)

const (
	// Aircraft cleared for an approach won't turn onto the final approach
	// course from more than this far off of it.
	MaxInterceptAngle = 60
	// Speed flown once established on the final approach course, in knots.
	FinalApproachSpeed = 180
)

// Intercept describes how an aircraft's current heading meets a runway's
// final approach course.
type Intercept struct {
	Distance float64 // metres along the current heading to the course
	Angle    float64 // degrees between the heading and the course
	TurnLead float64 // metres before the course at which to start the turn
}

func (s *Sim) Runway(id string) (Runway, bool) {
	for _, rwy := range s.Config.Runways {
		if rwy.ID == id {
			return rwy, true
		}
	}
	return Runway{}, false
}

// Intercept returns the geometry of the aircraft's intercept of the given
// runway's final approach course. ok is false if its current heading
// never crosses the course.
func (s *Sim) Intercept(index int, runway string) (ic Intercept, ok bool, err error) {
	if !s.checkIndex(index, "intercept") {
		return Intercept{}, false, ErrInvalidIndex
	}
	rwy, found := s.Runway(runway)
	if !found {
		return Intercept{}, false, ErrUnknownRunway
	}
	ic, ok = s.intercept(&s.navs[index], rwy)
	return ic, ok, nil
}

func (s *Sim) intercept(n *nav.Nav, rwy Runway) (Intercept, bool) {
	d, ok := n.DistanceToIntercept(rwy.Position, rwy.Course)
	if !ok {
		return Intercept{}, false
	}
	angle := math.HeadingDifference(n.FlightState.Heading, rwy.Course)
	r := nav.TurnRadius(n.FlightState.Speed, s.perf.Rate.Turn)
	return Intercept{
		Distance: d,
		Angle:    angle,
		TurnLead: r * gomath.Tan(math.Radians(angle)/2),
	}, true
}

// ClearApproach clears the aircraft at the given index to intercept the
// final approach course of the given runway from its present heading.
func (s *Sim) ClearApproach(index int, runway string) error {
	if !s.checkIndex(index, "clear approach") {
		return ErrInvalidIndex
	}
	if _, ok := s.Runway(runway); !ok {
		return ErrUnknownRunway
	}
	s.approaches[index] = runway
	return nil
}

func (s *Sim) CancelApproach(index int) error {
	if !s.checkIndex(index, "cancel approach") {
		return ErrInvalidIndex
	}
	s.approaches[index] = ""
	return nil
}

// updateApproach turns an aircraft that is cleared for an approach onto
// the final approach course once it reaches the point where it must start
// its turn.
func (s *Sim) updateApproach(index int) {
	id := s.approaches[index]
	if id == "" {
		return
	}
	rwy, ok := s.Runway(id)
	if !ok {
		s.approaches[index] = ""
		return
	}

	n := &s.navs[index]
	ic, ok := s.intercept(n, rwy)
	if !ok || ic.Angle >= MaxInterceptAngle || ic.Distance > ic.TurnLead {
		return
	}

	s.lg.Info("turning onto final approach course", slog.String("callsign", s.callsigns[index]),
		slog.String("runway", rwy.ID), slog.Float64("angle", ic.Angle))

	n.AssignHeading(rwy.Course)
	n.AssignSpeed(s.perf.ClampSpeed(math.KnotsToMPS(FinalApproachSpeed)))
	s.approaches[index] = ""
}
