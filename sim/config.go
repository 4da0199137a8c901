// sim/config.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brunoga/deep"

	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/util"
)

// HistorySeparationMethod selects how position history samples are
// spaced out.
type HistorySeparationMethod int

const (
	// HistorySeparationTime would space samples by elapsed time; it is
	// not implemented and rejected by Config.Validate.
	HistorySeparationTime HistorySeparationMethod = iota
	HistorySeparationDistance
)

func (m HistorySeparationMethod) String() string {
	switch m {
	case HistorySeparationTime:
		return "time"
	case HistorySeparationDistance:
		return "distance"
	default:
		return fmt.Sprintf("HistorySeparationMethod(%d)", int(m))
	}
}

func (m HistorySeparationMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *HistorySeparationMethod) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "time":
		*m = HistorySeparationTime
	case "distance":
		*m = HistorySeparationDistance
	default:
		return fmt.Errorf("%q: unknown history separation method", string(b))
	}
	return nil
}

// Runway describes a runway with a straight-in final approach course,
// which aircraft cleared for the approach will turn to intercept.
type Runway struct {
	ID       string        `json:"id"`
	Position math.Point2LL `json:"position"`
	Course   float64       `json:"course"` // degrees true
}

// Config collects the simulation parameters. Distances are given in the
// units controllers use (nautical miles and feet); NewSim converts them.
type Config struct {
	Center   math.Point2LL `json:"center"`
	RadiusNM float64       `json:"radius_nm"`

	MaxAircraft int `json:"max_aircraft"`

	MaxHistory              int                     `json:"max_history"`
	HistorySeparationMethod HistorySeparationMethod `json:"history_separation_method"`
	HistorySeparationNM     float64                 `json:"history_separation_nm"`

	RemoveOutOfBounds bool `json:"remove_out_of_bounds"`

	// Minimum separation: an incident requires both to be violated.
	HorizontalSeparationNM float64 `json:"horizontal_separation_nm"`
	VerticalSeparationFeet float64 `json:"vertical_separation_ft"`

	Performance av.Performance `json:"performance"`
	Airlines    []av.Airline   `json:"airlines"`
	Runways     []Runway       `json:"runways"`
}

// DefaultConfig returns a configuration centred on Glasgow.
func DefaultConfig() Config {
	// LoadConfig decodes into these slices in place.
	airlines := deep.MustCopy(av.DefaultAirlines)

	return Config{
		Center:                  math.LL(55.87348, -4.43058),
		RadiusNM:                30,
		MaxAircraft:             100,
		MaxHistory:              10,
		HistorySeparationMethod: HistorySeparationDistance,
		HistorySeparationNM:     0.5,
		RemoveOutOfBounds:       false,
		HorizontalSeparationNM:  3,
		VerticalSeparationFeet:  1000,
		Performance:             av.DefaultPerformance(),
		Airlines:                airlines,
		Runways: []Runway{
			{ID: "05", Position: math.LL(55.8707755, -4.435408), Course: 50},
			{ID: "23", Position: math.LL(55.8707755, -4.435408), Course: 230},
		},
	}
}

// LoadConfig reads a JSON configuration from r; fields that aren't
// present keep their default values. The result is validated.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := util.UnmarshalJSON(r, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, f string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+f, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Center.IsValid() && math.Abs(c.Center.Latitude()) <= 90 && math.Abs(c.Center.Longitude()) <= 180,
		"center %s is not a valid position", c.Center.DDString())
	check(c.RadiusNM > 0, "radius_nm %.2f must be positive", c.RadiusNM)
	check(c.MaxAircraft > 0, "max_aircraft %d must be positive", c.MaxAircraft)
	check(c.MaxHistory >= 0, "max_history %d must not be negative", c.MaxHistory)
	switch c.HistorySeparationMethod {
	case HistorySeparationDistance:
		check(c.HistorySeparationNM >= 0, "history_separation_nm %.2f must not be negative", c.HistorySeparationNM)
	case HistorySeparationTime:
		errs = append(errs, fmt.Errorf("%w: %s history separation: %w", ErrInvalidConfig,
			c.HistorySeparationMethod, ErrUnimplemented))
	default:
		check(false, "%s: unknown history separation method", c.HistorySeparationMethod)
	}
	check(c.HorizontalSeparationNM > 0, "horizontal_separation_nm %.2f must be positive", c.HorizontalSeparationNM)
	check(c.VerticalSeparationFeet > 0, "vertical_separation_ft %.0f must be positive", c.VerticalSeparationFeet)

	if err := c.Performance.Validate(); err != nil {
		errs = append(errs, err)
	}

	for _, al := range c.Airlines {
		check(al.ICAO != "", "airline with no ICAO code")
		check(len(al.Fleet) > 0, "airline %q has no fleet", al.ICAO)
	}

	seen := make(map[string]bool)
	for _, rwy := range c.Runways {
		check(rwy.ID != "" && !seen[rwy.ID], "runway %q: missing or repeated id", rwy.ID)
		check(rwy.Position.IsValid(), "runway %q: invalid position", rwy.ID)
		seen[rwy.ID] = true
	}

	return errors.Join(errs...)
}
