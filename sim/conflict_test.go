// sim/conflict_test.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"slices"
	"testing"

	"github.com/radarsim/radarsim/math"
)

func TestDetectIncidents(t *testing.T) {
	s := newTestSim(t)

	// A and B 2nm apart at the same level, C 5nm from A.
	a := makeTestState(0, 0, 10000, 0, 250)
	b := makeTestState(90, 2, 10000, 0, 250)
	c := makeTestState(270, 5, 10000, 0, 250)
	mustAdd(t, s, "TSTA", a)
	mustAdd(t, s, "TSTB", b)
	mustAdd(t, s, "TSTC", c)

	inc := s.CheckSeparation()
	if len(inc) != 1 {
		t.Fatalf("expected 1 incident, got %+v", inc)
	}
	if inc[0].A != 0 || inc[0].B != 1 {
		t.Errorf("expected incident between 0 and 1, got %d and %d", inc[0].A, inc[0].B)
	}
	if math.Abs(math.MetresToNM(inc[0].Horizontal)-2) > 1e-6 || inc[0].Vertical != 0 {
		t.Errorf("unexpected separation %+v", inc[0])
	}

	// Moving B 5nm away resolves it.
	pos := math.Destination(testCenter, math.NMToMetres(5), 90, 0)
	if err := s.Update("TSTB", AircraftUpdate{Position: &pos}); err != nil {
		t.Fatal(err)
	}
	if inc := s.CheckSeparation(); len(inc) != 0 {
		t.Errorf("expected no incidents, got %+v", inc)
	}
}

func TestDetectIncidentsVertical(t *testing.T) {
	for _, tc := range []struct {
		diff     float64 // feet
		incident bool
	}{
		{0, true},
		{999, true},
		{1000, true},
		{1001, false},
		{5000, false},
	} {
		s := newTestSim(t)
		mustAdd(t, s, "TSTA", makeTestState(0, 0, 10000, 0, 250))
		mustAdd(t, s, "TSTB", makeTestState(90, 1, 10000+tc.diff, 0, 250))

		// Compare in feet to avoid depending on the rounding of the
		// conversions at exactly the minimum.
		inc := s.DetectIncidents(math.FeetToMetres(1000)+1e-6, math.NMToMetres(3))
		if got := len(inc) == 1; got != tc.incident {
			t.Errorf("%.0f ft apart: got incident %v, expected %v", tc.diff, got, tc.incident)
		}
	}
}

func TestDetectIncidentsPairsOnce(t *testing.T) {
	s := newTestSim(t)
	for _, cs := range []string{"TST0", "TST1", "TST2"} {
		mustAdd(t, s, cs, makeTestState(0, 0, 10000, 0, 250))
	}
	mustAdd(t, s, "TST3", makeTestState(0, 20, 10000, 0, 250))

	var pairs [][2]int
	for _, inc := range s.CheckSeparation() {
		pairs = append(pairs, [2]int{inc.A, inc.B})
	}
	expected := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	if !slices.Equal(pairs, expected) {
		t.Errorf("got pairs %v, expected %v", pairs, expected)
	}

	inv := Involved(s.CheckSeparation(), s.Len())
	if !slices.Equal(inv, []bool{true, true, true, false}) {
		t.Errorf("unexpected involvement %v", inv)
	}
}

func TestInvolvedIgnoresStaleIndices(t *testing.T) {
	inv := Involved([]Incident{{A: 1, B: 5}, {A: -1, B: 0}}, 3)
	if !slices.Equal(inv, []bool{true, true, false}) {
		t.Errorf("unexpected involvement %v", inv)
	}
}
