// aviation/errors.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "errors"

var (
	ErrInvalidPerformance         = errors.New("Invalid performance envelope")
	ErrInvalidSquawkCode          = errors.New("Invalid squawk code")
	ErrNoMoreAvailableSquawkCodes = errors.New("No more available squawk codes")
	ErrSquawkCodeAlreadyAssigned  = errors.New("Squawk code has already been assigned")
	ErrSquawkCodeNotManagedByPool = errors.New("Squawk code is not managed by this pool")
	ErrSquawkCodeUnassigned       = errors.New("Squawk code has not been assigned")
)
