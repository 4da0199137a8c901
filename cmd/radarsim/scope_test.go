// cmd/radarsim/scope_test.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/radarsim/radarsim/log"
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/nav"
	"github.com/radarsim/radarsim/sim"
)

func TestScopeTransform(t *testing.T) {
	center := math.LL(55.87348, -4.43058)
	const w, h = 80, 40
	xf := makeScopeTransform(center, 30, w, h)

	if x, y := xf.Cell(center); x != w/2 || y != h/2 {
		t.Errorf("center maps to (%d,%d), expected (%d,%d)", x, y, w/2, h/2)
	}

	for brg := 0.0; brg < 360; brg += 15 {
		x, y := xf.Cell(math.Destination(center, math.NMToMetres(30), brg, 0))
		if x < 0 || x >= w || y < 0 || y >= h {
			t.Errorf("bearing %.0f: (%d,%d) is off the screen", brg, x, y)
		}
	}

	north := math.Destination(center, math.NMToMetres(10), 0, 0)
	if _, y := xf.Cell(north); y >= h/2 {
		t.Errorf("north should be up the screen, got row %d", y)
	}
	east := math.Destination(center, math.NMToMetres(10), 90, 0)
	if x, _ := xf.Cell(east); x <= w/2 {
		t.Errorf("east should be to the right, got column %d", x)
	}

	// Rows are twice the height of columns.
	p := xf.LatLong(w/2, h/2)
	px, py := xf.LatLong(w/2+1, h/2), xf.LatLong(w/2, h/2+1)
	dx, dy := math.NMDistance2LL(p, px), math.NMDistance2LL(p, py)
	if math.Abs(dy/dx-2) > 0.01 {
		t.Errorf("row/column aspect %f, expected 2", dy/dx)
	}

	for _, q := range []math.Point2LL{center, north, east} {
		x, y := xf.Cell(q)
		if d := math.NMDistance2LL(q, xf.LatLong(x, y)); d > dy {
			t.Errorf("%s: round trip is %f nm away", q.DDString(), d)
		}
	}
}

func TestHeadingSymbol(t *testing.T) {
	for _, tc := range []struct {
		hdg      float64
		expected rune
	}{{0, '↑'}, {359, '↑'}, {22, '↑'}, {23, '↗'}, {90, '→'}, {180, '↓'}, {-90, '←'}, {315, '↖'}} {
		if r := headingSymbol(tc.hdg); r != tc.expected {
			t.Errorf("%.0f: got %c, expected %c", tc.hdg, r, tc.expected)
		}
	}
}

func TestRuneCommand(t *testing.T) {
	for r, cmd := range map[rune]command{
		'q': cmdQuit, ' ': cmdPause, '+': cmdFaster, '-': cmdSlower, 'a': cmdSpawn,
		'x': cmdRemove, 'h': cmdTrails, 'l': cmdApproach, 'L': cmdCancelApproach, 'z': cmdNone,
	} {
		if got := runeCommand(r); got != cmd {
			t.Errorf("%q: got %d, expected %d", r, got, cmd)
		}
	}
}

func makeTestScope(t *testing.T) *scope {
	var buf bytes.Buffer
	s, err := sim.NewSim(sim.DefaultConfig(), log.NewTest(&buf, "warn"))
	if err != nil {
		t.Fatal(err)
	}
	center := s.Bounds().Center
	for i, cs := range []string{"TST0", "TST1", "TST2"} {
		_, err := s.Add(cs, "A320", 0, nav.FlightState{
			Position: math.Destination(center, math.NMToMetres(float64(5*i)), 90, 0),
			Altitude: math.FeetToMetres(6000),
			Heading:  92,
			Speed:    math.KnotsToMPS(250),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	return &scope{sim: s, trails: true}
}

func TestScopeSelection(t *testing.T) {
	sc := makeTestScope(t)

	for _, tc := range []struct {
		cmd      command
		expected int
	}{
		{cmdSelectNext, 0}, {cmdSelectNext, 1}, {cmdSelectPrevious, 0}, {cmdSelectPrevious, 2},
		{cmdSelectNext, 0}, {cmdDeselect, sim.NoSelection},
	} {
		sc.apply(tc.cmd)
		if got := sc.sim.Selected(); got != tc.expected {
			t.Errorf("command %d: selected %d, expected %d", tc.cmd, got, tc.expected)
		}
	}

	// Nothing is displayed, so commands that need an aircraft do nothing.
	sc.apply(cmdRemove)
	if sc.sim.Len() != 3 {
		t.Errorf("remove with nothing displayed removed an aircraft")
	}

	// The hovered aircraft is displayed when nothing is selected.
	_ = sc.sim.SetHovered(2)
	if sc.displayed() != 2 {
		t.Errorf("expected the hovered aircraft to be displayed")
	}
	_ = sc.sim.SelectAircraft(1)
	if sc.displayed() != 1 {
		t.Errorf("expected the selected aircraft to be displayed")
	}
}

func TestScopeCommands(t *testing.T) {
	sc := makeTestScope(t)
	_ = sc.sim.SelectAircraft(1)

	sc.apply(cmdTurnRight)
	sc.apply(cmdTurnRight)
	sc.apply(cmdClimb)
	sc.apply(cmdFaster)

	ia := sc.sim.ByIndexImperial(1)
	if ia.TargetHeading == nil || *ia.TargetHeading != 102 {
		t.Errorf("target heading %v, expected 102", ia.TargetHeading)
	}
	if ia.TargetAltitude == nil || math.Abs(*ia.TargetAltitude-7000) > 1e-6 {
		t.Errorf("target altitude %v, expected 7000", ia.TargetAltitude)
	}
	if ia.TargetSpeed == nil || math.Abs(*ia.TargetSpeed-260) > 1e-6 {
		t.Errorf("target speed %v, expected 260", ia.TargetSpeed)
	}

	sc.apply(cmdTurnLeft)
	sc.apply(cmdDescend)
	sc.apply(cmdDescend)
	sc.apply(cmdSlower)
	ia = sc.sim.ByIndexImperial(1)
	if *ia.TargetHeading != 97 || math.Abs(*ia.TargetAltitude-5000) > 1e-6 || math.Abs(*ia.TargetSpeed-250) > 1e-6 {
		t.Errorf("unexpected targets %.0f %.0f %.0f", *ia.TargetHeading, *ia.TargetAltitude, *ia.TargetSpeed)
	}

	sc.apply(cmdPause)
	sc.apply(cmdTrails)
	if !sc.paused || sc.trails {
		t.Errorf("pause and trails should have toggled")
	}

	sc.apply(cmdRemove)
	if sc.sim.Len() != 2 || sc.message != "removed TST1" {
		t.Errorf("expected TST1 to be removed; %d aircraft, message %q", sc.sim.Len(), sc.message)
	}
	if sc.sim.Selected() != sim.NoSelection {
		t.Errorf("selection should be cleared when the selected aircraft is removed")
	}

	sc.apply(cmdSpawn)
	if sc.sim.Len() != 3 {
		t.Errorf("expected an aircraft to be spawned: %s", sc.message)
	}
}

func TestDataBlock(t *testing.T) {
	climbing, level := 8000.0, 6000.0
	for _, tc := range []struct {
		ac       sim.ImperialAircraft
		expected string
	}{
		{sim.ImperialAircraft{FlightLevel: 60, Speed: 250, TargetAltitude: &climbing}, "060↑080 250"},
		{sim.ImperialAircraft{FlightLevel: 90, Speed: 180, TargetAltitude: &level}, "090↓060 180"},
		{sim.ImperialAircraft{FlightLevel: 60, Speed: 250, TargetAltitude: &level}, "060 250"},
		{sim.ImperialAircraft{FlightLevel: 350, Speed: 450}, "350 450"},
	} {
		if got := dataBlock(&tc.ac); got != tc.expected {
			t.Errorf("got %q, expected %q", got, tc.expected)
		}
	}
}

func TestDetails(t *testing.T) {
	sc := makeTestScope(t)
	d := sc.details(0)
	if !strings.HasPrefix(d, "TST0 A320 0000  hdg 092 E  6000ft  250kt") {
		t.Errorf("unexpected details %q", d)
	}

	_ = sc.sim.SetTargetHeading(1, 225)
	if d := sc.details(1); !strings.Contains(d, "hdg 092 E→225") {
		t.Errorf("details should show the assigned heading: %q", d)
	}
}

func TestIncidentText(t *testing.T) {
	sc := makeTestScope(t)
	inc := sim.Incident{A: 0, B: 1, Horizontal: math.NMToMetres(2), Vertical: math.FeetToMetres(500)}
	expected := "TST0     TST1      2.00 nm   500 ft  TST1 East of TST0"
	if got := incidentText(sc.sim, inc); got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}

	_ = sc.sim.Remove(2)
	if got := incidentText(sc.sim, sim.Incident{A: 0, B: 2}); got != "stale incident" {
		t.Errorf("got %q for a removed aircraft", got)
	}
}
