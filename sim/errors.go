// sim/errors.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"
)

var (
	ErrDuplicateCallsign = errors.New("Duplicate callsign")
	ErrInvalidCallsign   = errors.New("Invalid callsign")
	ErrInvalidConfig     = errors.New("Invalid configuration")
	ErrInvalidIndex      = errors.New("Invalid aircraft index")
	ErrNoTrafficSample   = errors.New("Unable to sample traffic")
	ErrStoreFull         = errors.New("Aircraft store is full")
	ErrUnknownCallsign   = errors.New("No aircraft exists with specified callsign")
	ErrUnknownRunway     = errors.New("Unknown runway")
	ErrUnimplemented     = errors.New("Not implemented")
)
