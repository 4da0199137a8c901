// math/latlong.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"encoding/json"
	"fmt"
	gomath "math"
	"regexp"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////
// Point2LL

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float64

// NoPosition is returned by accessors that have no position to report
// (e.g., an empty history slot); check with IsValid.
var NoPosition = Point2LL{gomath.NaN(), gomath.NaN()}

func LL(lat, lon float64) Point2LL {
	return Point2LL{lon, lat}
}

func (p Point2LL) Longitude() float64 {
	return p[0]
}

func (p Point2LL) Latitude() float64 {
	return p[1]
}

// IsValid reports whether p holds an actual position rather than
// NoPosition.
func (p Point2LL) IsValid() bool {
	return !gomath.IsNaN(p[0]) && !gomath.IsNaN(p[1])
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

// DMSString returns the position in degrees minutes, seconds, e.g.
// N039.51.39.243,W075.16.29.511
func (p Point2LL) DMSString() string {
	format := func(v float64) string {
		d, m, s := DecimalDegreesToDMS(v)
		return fmt.Sprintf("%03d.%02d.%06.3f", d, m, s)
	}

	var s string
	if p[1] >= 0 {
		s = "N"
	} else {
		s = "S"
	}
	s += format(Abs(p[1]))

	if p[0] >= 0 {
		s += ",E"
	} else {
		s += ",W"
	}
	s += format(Abs(p[0]))

	return s
}

var (
	// pair of floats (no exponents)
	reWaypointFloat = regexp.MustCompile(`^(\-?[0-9]+\.[0-9]+), *(\-?[0-9]+\.[0-9]+)$`)
	// e.g. N55.52.11.179,W004.26.01.021
	reWaypointDotted = regexp.MustCompile(`^([NS])([0-9]+)\.([0-9]+)\.([0-9]+(?:\.[0-9]+)?), *([EW])([0-9]+)\.([0-9]+)\.([0-9]+(?:\.[0-9]+)?)$`)
)

// ParseLatLong parses positions given either as a pair of decimal degrees
// ("55.87348, -4.43058"; latitude first) or in dotted degrees, minutes,
// seconds ("N055.52.24.528,W004.25.50.088").
func ParseLatLong(llstr []byte) (Point2LL, error) {
	if strs := reWaypointDotted.FindStringSubmatch(string(llstr)); len(strs) == 9 {
		parse := func(hemi, deg, min, sec string) (float64, error) {
			d, err := strconv.Atoi(deg)
			if err != nil {
				return 0, err
			}
			m, err := strconv.Atoi(min)
			if err != nil {
				return 0, err
			}
			s, err := strconv.ParseFloat(sec, 64)
			if err != nil {
				return 0, err
			}
			if m >= 60 || s >= 60 {
				return 0, fmt.Errorf("%s: invalid minutes/seconds", llstr)
			}
			v := DMSToDecimalDegrees(d, m, s)
			if hemi == "S" || hemi == "W" {
				v = -v
			}
			return v, nil
		}

		var p Point2LL
		var err error
		if p[1], err = parse(strs[1], strs[2], strs[3], strs[4]); err != nil {
			return Point2LL{}, err
		}
		if p[0], err = parse(strs[5], strs[6], strs[7], strs[8]); err != nil {
			return Point2LL{}, err
		}
		return p, p.checkRange(llstr)
	} else if strs := reWaypointFloat.FindStringSubmatch(string(llstr)); len(strs) == 3 {
		var p Point2LL
		if l, err := strconv.ParseFloat(strs[1], 64); err != nil {
			return Point2LL{}, err
		} else {
			p[1] = l
		}
		if l, err := strconv.ParseFloat(strs[2], 64); err != nil {
			return Point2LL{}, err
		} else {
			p[0] = l
		}
		return p, p.checkRange(llstr)
	} else {
		return Point2LL{}, fmt.Errorf("%s: invalid latlong string", llstr)
	}
}

func (p Point2LL) checkRange(llstr []byte) error {
	if Abs(p[1]) > 90 || Abs(p[0]) > 180 {
		return fmt.Errorf("%s: latlong out of range", llstr)
	}
	return nil
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

// Store Point2LLs as strings is JSON, for compactness/friendliness...
func (p Point2LL) MarshalJSON() ([]byte, error) {
	return []byte("\"" + p.DMSString() + "\""), nil
}

func (p *Point2LL) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		// Also allow arrays of two floats, longitude first.
		var pt [2]float64
		err := json.Unmarshal(b, &pt)
		if err == nil {
			*p = pt
		}
		return err
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	pt, err := ParseLatLong([]byte(s))
	if err == nil {
		*p = pt
	}
	return err
}
