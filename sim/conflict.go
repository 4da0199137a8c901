// sim/conflict.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"github.com/radarsim/radarsim/math"
)

// Incident records a pair of aircraft that are closer than the separation
// minima both horizontally and vertically. Each pair is reported once,
// with A < B.
type Incident struct {
	A, B       int
	Horizontal float64 // metres
	Vertical   float64 // metres
}

// DetectIncidents returns all of the pairs of live aircraft that are no
// more than minVertical metres apart vertically and less than
// minHorizontal metres apart horizontally. The result reflects the
// current positions and should be recomputed after every tick.
func (s *Store) DetectIncidents(minVertical, minHorizontal float64) []Incident {
	var incidents []Incident
	for i := range s.n {
		fsi := &s.navs[i].FlightState
		for j := i + 1; j < s.n; j++ {
			fsj := &s.navs[j].FlightState

			vert := math.Abs(fsi.Altitude - fsj.Altitude)
			if vert > minVertical {
				continue
			}
			if horiz := math.Distance(fsi.Position, fsj.Position, 0); horiz < minHorizontal {
				incidents = append(incidents, Incident{A: i, B: j, Horizontal: horiz, Vertical: vert})
			}
		}
	}
	return incidents
}

// CheckSeparation returns the incidents for the configured separation
// minima.
func (s *Sim) CheckSeparation() []Incident {
	return s.DetectIncidents(s.separation.vertical, s.separation.horizontal)
}

// Involved returns a slice of n Booleans where the i-th is true if
// aircraft i appears in any of the incidents.
func Involved(incidents []Incident, n int) []bool {
	inv := make([]bool, n)
	for _, inc := range incidents {
		if inc.A >= 0 && inc.A < n {
			inv[inc.A] = true
		}
		if inc.B >= 0 && inc.B < n {
			inv[inc.B] = true
		}
	}
	return inv
}
