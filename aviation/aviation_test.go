// aviation/aviation_test.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/rand"
)

func TestParseSquawk(t *testing.T) {
	for _, test := range []struct {
		s   string
		sq  Squawk
		err bool
	}{
		{"1200", 0o1200, false},
		{"7777", 0o7777, false},
		{"0000", 0, false},
		{"0420", 0o420, false},
		{"1280", 0, true},
		{"123", 0, true},
		{"12345", 0, true},
		{"12a4", 0, true},
		{"-123", 0, true},
	} {
		sq, err := ParseSquawk(test.s)
		if (err != nil) != test.err {
			t.Errorf("%q: got error %v, expected error %v", test.s, err, test.err)
		} else if err != nil && !errors.Is(err, ErrInvalidSquawkCode) {
			t.Errorf("%q: unexpected error %v", test.s, err)
		} else if err == nil && sq != test.sq {
			t.Errorf("%q: got %o, expected %o", test.s, sq, test.sq)
		}
		if err == nil && sq.String() != test.s {
			t.Errorf("%q: String() gave %q", test.s, sq.String())
		}
	}
}

func TestSquawkText(t *testing.T) {
	var sq Squawk
	if err := sq.UnmarshalText([]byte("7421")); err != nil || sq != 0o7421 {
		t.Errorf("UnmarshalText: got %s, %v", sq, err)
	}
	if b, _ := sq.MarshalText(); string(b) != "7421" {
		t.Errorf("MarshalText: got %q", b)
	}
	if err := sq.UnmarshalText([]byte("9999")); err == nil {
		t.Errorf("expected error for non-octal code")
	}

	if ok, code := Squawk(0o7700).IsSPC(); !ok || code != "EM" {
		t.Errorf("7700 should be the emergency SPC; got %v %q", ok, code)
	}
	if ok, _ := Squawk(0o4521).IsSPC(); ok {
		t.Errorf("4521 isn't an SPC")
	}
}

func TestSquawkCodePool(t *testing.T) {
	p := NewSquawkCodePool()
	r := rand.NewSeeded(7)

	n := p.NumAvailable()
	seen := make(map[Squawk]bool)
	for range 200 {
		sq, err := p.Get(&r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[sq] {
			t.Errorf("%s handed out twice", sq)
		}
		seen[sq] = true
		if ok, _ := sq.IsSPC(); ok || sq%0o100 == 0 || sq == 0o7000 || sq == 0o2000 {
			t.Errorf("%s shouldn't be handed out", sq)
		}
		if !p.IsAssigned(sq) {
			t.Errorf("%s should be assigned", sq)
		}
	}
	if p.NumAvailable() != n-200 {
		t.Errorf("expected %d available, got %d", n-200, p.NumAvailable())
	}

	for sq := range seen {
		if err := p.Return(sq); err != nil {
			t.Errorf("%s: unexpected error returning: %v", sq, err)
		}
		if err := p.Return(sq); !errors.Is(err, ErrSquawkCodeUnassigned) {
			t.Errorf("%s: expected ErrSquawkCodeUnassigned on double return, got %v", sq, err)
		}
	}
	if p.NumAvailable() != n {
		t.Errorf("expected %d available after returning all, got %d", n, p.NumAvailable())
	}

	if err := p.Take(0o4521); err != nil {
		t.Errorf("Take: %v", err)
	}
	if err := p.Take(0o4521); !errors.Is(err, ErrSquawkCodeAlreadyAssigned) {
		t.Errorf("expected ErrSquawkCodeAlreadyAssigned, got %v", err)
	}
	if err := p.Take(0o7700); !errors.Is(err, ErrSquawkCodeNotManagedByPool) {
		t.Errorf("expected ErrSquawkCodeNotManagedByPool, got %v", err)
	}
	if err := p.Return(0o7700); err != nil {
		t.Errorf("returning an unmanaged code should be ignored, got %v", err)
	}
}

func TestSquawkCodePoolExhaustion(t *testing.T) {
	p := NewSquawkCodePool()
	r := rand.NewSeeded(1)
	for p.NumAvailable() > 0 {
		if _, err := p.Get(&r); err != nil {
			t.Fatalf("unexpected error with %d available: %v", p.NumAvailable(), err)
		}
	}
	if _, err := p.Get(&r); !errors.Is(err, ErrNoMoreAvailableSquawkCodes) {
		t.Errorf("expected ErrNoMoreAvailableSquawkCodes, got %v", err)
	}
}

func TestDefaultPerformance(t *testing.T) {
	p := DefaultPerformance()
	if err := p.Validate(); err != nil {
		t.Errorf("default performance should validate: %v", err)
	}

	up, down := p.VerticalAcceleration()
	if up <= 0 || down >= 0 {
		t.Errorf("expected positive up and negative down accelerations, got %f, %f", up, down)
	}
	if math.Abs(up-0.15*math.StandardGravity) > 1e-9 || math.Abs(down+0.1*math.StandardGravity) > 1e-9 {
		t.Errorf("unexpected vertical accelerations %f, %f", up, down)
	}
	if a := p.HorizontalAcceleration(); math.Abs(a-0.05*math.StandardGravity) > 1e-9 {
		t.Errorf("unexpected horizontal acceleration %f", a)
	}

	if alt := p.ClampAltitude(0); alt != p.MinAltitude {
		t.Errorf("ClampAltitude(0) = %f, expected %f", alt, p.MinAltitude)
	}
	if alt := p.ClampAltitude(math.FeetToMetres(60000)); alt != p.MaxAltitude {
		t.Errorf("ClampAltitude(60000ft) = %f, expected %f", alt, p.MaxAltitude)
	}
	if spd := p.ClampSpeed(math.KnotsToMPS(250)); math.Abs(math.MPSToKnots(spd)-250) > 1e-9 {
		t.Errorf("ClampSpeed(250kt) changed the speed to %fkt", math.MPSToKnots(spd))
	}
}

func TestPerformanceValidate(t *testing.T) {
	p := DefaultPerformance()
	p.MinAltitude, p.MaxAltitude = p.MaxAltitude, p.MinAltitude
	p.Rate.Turn = 0
	p.MinVerticalG = 1.2

	err := p.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	if !errors.Is(err, ErrInvalidPerformance) {
		t.Errorf("expected ErrInvalidPerformance, got %v", err)
	}
	for _, s := range []string{"min_altitude", "turn rate", "min_vertical_g"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("expected %q to be reported in %q", s, err.Error())
		}
	}
}

func TestSampleTraffic(t *testing.T) {
	r := rand.NewSeeded(99)
	used := make(map[string]bool)
	inUse := func(cs string) bool { return used[cs] }

	for range 500 {
		cs, actype, ok := SampleTraffic(&r, DefaultAirlines, inUse)
		if !ok {
			t.Fatalf("SampleTraffic failed")
		}
		if used[cs] {
			t.Errorf("%s returned twice", cs)
		}
		used[cs] = true

		idx := slices.IndexFunc(DefaultAirlines, func(al Airline) bool { return strings.HasPrefix(cs, al.ICAO) })
		if idx == -1 {
			t.Errorf("%s: unknown airline", cs)
			continue
		}
		al := DefaultAirlines[idx]
		if !slices.ContainsFunc(al.Fleet, func(ac FleetAircraft) bool { return ac.ICAO == actype }) {
			t.Errorf("%s: type %q isn't in the %s fleet", cs, actype, al.ICAO)
		}
		if id := cs[len(al.ICAO):]; id[0] == '0' || !unicode.IsDigit(rune(id[0])) {
			t.Errorf("%s: flight number should start with a non-zero digit", cs)
		}
	}

	if _, _, ok := SampleTraffic(&r, nil, inUse); ok {
		t.Errorf("expected failure with no airlines")
	}

	// With everything in use, sampling should give up rather than spin.
	al := Airline{ICAO: "ABC", CallsignFormats: []string{"#"}}
	if _, ok := al.SampleCallsign(&r, func(string) bool { return true }); ok {
		t.Errorf("expected SampleCallsign to give up")
	}
}
