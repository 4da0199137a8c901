// sim/config_test.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"
	"strings"
	"testing"

	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/math"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(strings.NewReader(`{
  "radius_nm": 40,
  "center": "N055.52.24.528,W004.25.50.088",
  "remove_out_of_bounds": true,
  "history_separation_method": "Distance",
  "performance": { "max_speed": 200 }
}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if c.RadiusNM != 40 || !c.RemoveOutOfBounds {
		t.Errorf("fields weren't loaded: %+v", c)
	}
	expected := math.LL(55+52.0/60+24.528/3600, -(4 + 25.0/60 + 50.088/3600))
	if math.Abs(c.Center.Latitude()-expected.Latitude()) > 1e-9 ||
		math.Abs(c.Center.Longitude()-expected.Longitude()) > 1e-9 {
		t.Errorf("center %s, expected %s", c.Center.DDString(), expected.DDString())
	}

	def := av.DefaultPerformance()
	if c.Performance.MaxSpeed != 200 {
		t.Errorf("max_speed %f, expected 200", c.Performance.MaxSpeed)
	}
	if c.Performance.MinSpeed != def.MinSpeed || c.Performance.Rate != def.Rate {
		t.Errorf("unspecified performance fields should keep their defaults")
	}
	if c.MaxAircraft != 100 || c.HorizontalSeparationNM != 3 || len(c.Runways) != 2 {
		t.Errorf("unspecified fields should keep their defaults: %+v", c)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		json     string
		is       []error
		contains string
	}{
		{json: `{"history_separation_method": "time"}`, is: []error{ErrInvalidConfig, ErrUnimplemented}},
		{json: `{"history_separation_method": "hourly"}`, contains: "unknown history separation method"},
		{json: `{"radius_nm": 10, "radius_nm": 20}`, contains: "radius_nm: key repeated"},
		{json: `{"radius_nm": "ten"}`, contains: "radius_nm"},
		{json: `{"max_aircraft": -1, "radius_nm": 0}`, is: []error{ErrInvalidConfig}, contains: "radius_nm"},
		{json: `{"center": "somewhere"}`, contains: "invalid latlong"},
		{json: `{"performance": {"min_speed": 500}}`, is: []error{av.ErrInvalidPerformance}},
		{json: `{"runways": [{"id": "05", "position": [-4.4, 55.8]}, {"id": "05", "position": [-4.4, 55.8]}]}`,
			is: []error{ErrInvalidConfig}, contains: "repeated id"},
	} {
		_, err := LoadConfig(strings.NewReader(tc.json))
		if err == nil {
			t.Errorf("%s: expected an error", tc.json)
			continue
		}
		for _, target := range tc.is {
			if !errors.Is(err, target) {
				t.Errorf("%s: %v is not %v", tc.json, err, target)
			}
		}
		if tc.contains != "" && !strings.Contains(err.Error(), tc.contains) {
			t.Errorf("%s: %q doesn't mention %q", tc.json, err, tc.contains)
		}
	}
}

func TestHistorySeparationMethodText(t *testing.T) {
	for _, m := range []HistorySeparationMethod{HistorySeparationTime, HistorySeparationDistance} {
		b, _ := m.MarshalText()
		var m2 HistorySeparationMethod
		if err := m2.UnmarshalText(b); err != nil || m2 != m {
			t.Errorf("%s: round trip gave %s, %v", m, m2, err)
		}
	}
	if HistorySeparationMethod(7).String() != "HistorySeparationMethod(7)" {
		t.Errorf("unexpected String for an unknown method")
	}
}
