// aviation/traffic.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strconv"

	"github.com/radarsim/radarsim/rand"
)

type FleetAircraft struct {
	ICAO  string `json:"icao"`
	Count int    `json:"count"`
}

// Airline describes an operator that random traffic can be drawn from.
// In callsign formats, '#' is replaced with a digit and '@' with a
// letter.
type Airline struct {
	ICAO            string          `json:"icao"`
	CallsignFormats []string        `json:"callsign_formats"`
	Fleet           []FleetAircraft `json:"fleet"`
}

// DefaultAirlines is a mix of operators typical of a UK terminal area.
var DefaultAirlines = []Airline{
	{
		ICAO:            "EZY",
		CallsignFormats: []string{"##@@", "###@"},
		Fleet:           []FleetAircraft{{"A319", 4}, {"A320", 10}, {"A20N", 6}},
	},
	{
		ICAO:            "RYR",
		CallsignFormats: []string{"####", "##@@"},
		Fleet:           []FleetAircraft{{"B738", 20}, {"B38M", 5}},
	},
	{
		ICAO:            "BAW",
		CallsignFormats: []string{"####", "###@"},
		Fleet:           []FleetAircraft{{"A320", 8}, {"A321", 4}, {"A20N", 3}},
	},
	{
		ICAO:            "LOG",
		CallsignFormats: []string{"##@", "###"},
		Fleet:           []FleetAircraft{{"SF34", 4}, {"E145", 3}, {"AT76", 2}},
	},
	{
		ICAO:            "TOM",
		CallsignFormats: []string{"###@", "####"},
		Fleet:           []FleetAircraft{{"B738", 6}, {"B38M", 6}, {"B788", 2}},
	},
}

// SampleAircraft returns a type from the airline's fleet, weighted by the
// number of each type it operates.
func (a Airline) SampleAircraft(r *rand.Rand) string {
	var actype string
	total := 0
	for _, ac := range a.Fleet {
		// Reservoir sampling...
		total += ac.Count
		if total > 0 && r.Float64() < float64(ac.Count)/float64(total) {
			actype = ac.ICAO
		}
	}
	return actype
}

// SampleCallsign returns a callsign for the airline that isn't yet in
// use, according to inUse. It gives up after a number of attempts, in
// which case false is returned.
func (a Airline) SampleCallsign(r *rand.Rand, inUse func(string) bool) (string, bool) {
	for range 100 {
		format := "####"
		if len(a.CallsignFormats) > 0 {
			format = rand.SampleSlice(r, a.CallsignFormats)
		}

		id := ""
		for i, ch := range format {
			switch ch {
			case '#':
				if i == 0 {
					// Don't start with a 0.
					id += strconv.Itoa(1 + r.Intn(9))
				} else {
					id += strconv.Itoa(r.Intn(10))
				}
			case '@':
				id += string(rune('A' + r.Intn(26)))
			}
		}

		if cs := a.ICAO + id; !inUse(cs) {
			return cs, true
		}
	}
	return "", false
}

// SampleTraffic picks an airline from the given set and returns a fresh
// callsign and an aircraft type for it.
func SampleTraffic(r *rand.Rand, airlines []Airline, inUse func(string) bool) (callsign, actype string, ok bool) {
	if len(airlines) == 0 {
		return "", "", false
	}
	al := rand.SampleSlice(r, airlines)
	if callsign, ok = al.SampleCallsign(r, inUse); !ok {
		return "", "", false
	}
	return callsign, al.SampleAircraft(r), true
}
