// aviation/performance.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
	"fmt"

	"github.com/radarsim/radarsim/math"
)

// Performance describes the operational envelope that commanded targets
// are clamped to and the rate limits the control laws fly with. All
// quantities are metric: metres, m/s, G and degrees per second.
type Performance struct {
	MinAltitude float64 `json:"min_altitude"`
	MaxAltitude float64 `json:"max_altitude"`
	MinSpeed    float64 `json:"min_speed"`
	MaxSpeed    float64 `json:"max_speed"`

	Rate struct {
		Climb   float64 `json:"climb"`   // maximum vertical speed when climbing
		Descent float64 `json:"descent"` // maximum vertical speed (magnitude) when descending
		Minimum float64 `json:"minimum"` // vertical speed used for the final few feet
		Turn    float64 `json:"turn"`    // degrees per second
	} `json:"rate"`

	// Load factor limits. The vertical ones include the 1G of level
	// flight, so 1.15 allows 0.15G of pitch-up and 0.9 allows 0.1G of
	// push-over.
	MaxVerticalG   float64 `json:"max_vertical_g"`
	MinVerticalG   float64 `json:"min_vertical_g"`
	MaxHorizontalG float64 `json:"max_horizontal_g"`
}

// DefaultPerformance returns an envelope for a generic airliner, with
// passenger-comfort rather than structural acceleration limits.
func DefaultPerformance() Performance {
	var p Performance
	p.MinAltitude = math.FeetToMetres(1000)
	p.MaxAltitude = math.FeetToMetres(41000)
	p.MinSpeed = math.KnotsToMPS(120)
	p.MaxSpeed = math.KnotsToMPS(450)
	p.Rate.Climb = math.FPMToMPS(3000)
	p.Rate.Descent = math.FPMToMPS(3000)
	p.Rate.Minimum = math.FPMToMPS(500)
	p.Rate.Turn = 3 // standard rate
	p.MaxVerticalG = 1.15
	p.MinVerticalG = 0.9
	p.MaxHorizontalG = 0.05
	return p
}

// VerticalAcceleration returns the maximum rate at which vertical speed
// may increase (positive) and decrease (negative), in m/s^2.
func (p Performance) VerticalAcceleration() (up, down float64) {
	return math.GForceToVerticalAcceleration(p.MaxVerticalG, true),
		math.GForceToVerticalAcceleration(p.MinVerticalG, true)
}

// HorizontalAcceleration returns the maximum change in ground speed per
// second, in m/s^2.
func (p Performance) HorizontalAcceleration() float64 {
	return math.GForceToMetresPerSecondSquared(p.MaxHorizontalG)
}

func (p Performance) ClampAltitude(alt float64) float64 {
	return math.Clamp(alt, p.MinAltitude, p.MaxAltitude)
}

func (p Performance) ClampSpeed(spd float64) float64 {
	return math.Clamp(spd, p.MinSpeed, p.MaxSpeed)
}

func (p Performance) Validate() error {
	var errs []error
	check := func(ok bool, f string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+f, append([]any{ErrInvalidPerformance}, args...)...))
		}
	}

	check(p.MinAltitude <= p.MaxAltitude, "min_altitude %.0f exceeds max_altitude %.0f", p.MinAltitude, p.MaxAltitude)
	check(p.MinSpeed > 0, "min_speed %.1f must be positive", p.MinSpeed)
	check(p.MinSpeed <= p.MaxSpeed, "min_speed %.1f exceeds max_speed %.1f", p.MinSpeed, p.MaxSpeed)
	check(p.Rate.Minimum > 0, "minimum rate %.2f must be positive", p.Rate.Minimum)
	check(p.Rate.Climb >= p.Rate.Minimum, "climb rate %.2f is below the minimum rate", p.Rate.Climb)
	check(p.Rate.Descent >= p.Rate.Minimum, "descent rate %.2f is below the minimum rate", p.Rate.Descent)
	check(p.Rate.Turn > 0, "turn rate %.2f must be positive", p.Rate.Turn)
	check(p.MaxVerticalG > 1, "max_vertical_g %.2f must exceed 1", p.MaxVerticalG)
	check(p.MinVerticalG < 1 && p.MinVerticalG >= 0, "min_vertical_g %.2f must be in [0,1)", p.MinVerticalG)
	check(p.MaxHorizontalG > 0, "max_horizontal_g %.3f must be positive", p.MaxHorizontalG)

	return errors.Join(errs...)
}
