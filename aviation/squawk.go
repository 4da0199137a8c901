// aviation/squawk.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
	"strconv"

	"github.com/radarsim/radarsim/rand"
)

// Squawk is a four-digit octal transponder code.
type Squawk int

func (s Squawk) String() string { return fmt.Sprintf("%04o", s) }

func ParseSquawk(s string) (Squawk, error) {
	if len(s) != 4 {
		return Squawk(0), ErrInvalidSquawkCode
	}

	sq, err := strconv.ParseInt(s, 8, 32) // base 8!!!
	if err != nil || sq < 0 || sq > 0o7777 {
		return Squawk(0), ErrInvalidSquawkCode
	}
	return Squawk(sq), nil
}

func (s Squawk) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Squawk) UnmarshalText(b []byte) error {
	sq, err := ParseSquawk(string(b))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

/////////////////////////////////////////////////////////////////////////
// SPC

// Special purpose codes; they are never handed out by a SquawkCodePool.
var spcs = map[Squawk]string{
	Squawk(0o7500): "HJ", // Hijack/Unlawful Interference
	Squawk(0o7600): "RF", // Communication Failure
	Squawk(0o7700): "EM", // Emergency
}

// IsSPC returns true if the given squawk code is a special purpose code;
// the second return value is its two-letter abbreviation.
func (s Squawk) IsSPC() (ok bool, code string) {
	code, ok = spcs[s]
	return
}

///////////////////////////////////////////////////////////////////////////
// SquawkCodePool

// SquawkCodePool hands out discrete codes so that simulated traffic never
// shares a code. Codes ending in 00, conspicuity codes and the SPCs are
// excluded.
type SquawkCodePool struct {
	available [0o10000]bool
	n         int
}

func NewSquawkCodePool() *SquawkCodePool {
	p := &SquawkCodePool{}
	for sq := 0o1001; sq <= 0o7776; sq++ {
		p.available[sq] = p.manages(Squawk(sq))
		if p.available[sq] {
			p.n++
		}
	}
	return p
}

func (p *SquawkCodePool) manages(sq Squawk) bool {
	if sq < 0o1001 || sq > 0o7776 || sq%0o100 == 0 {
		return false
	}
	if _, ok := spcs[sq]; ok {
		return false
	}
	// 7000 is the UK/European VFR conspicuity code and 2000 the code for
	// aircraft entering SSR airspace without one.
	return sq != 0o7000 && sq != 0o2000
}

// Get returns a randomly-selected available code and marks it assigned.
func (p *SquawkCodePool) Get(r *rand.Rand) (Squawk, error) {
	if p.n == 0 {
		return Squawk(0), ErrNoMoreAvailableSquawkCodes
	}
	start := r.Intn(len(p.available))
	for i := range len(p.available) {
		sq := (start + i) % len(p.available)
		if p.available[sq] {
			p.available[sq] = false
			p.n--
			return Squawk(sq), nil
		}
	}
	return Squawk(0), ErrNoMoreAvailableSquawkCodes
}

func (p *SquawkCodePool) IsAssigned(sq Squawk) bool {
	return p.manages(sq) && !p.available[sq]
}

// Take marks the given code as assigned, e.g. for an aircraft that
// arrived with its own code.
func (p *SquawkCodePool) Take(sq Squawk) error {
	if !p.manages(sq) {
		return ErrSquawkCodeNotManagedByPool
	}
	if !p.available[sq] {
		return ErrSquawkCodeAlreadyAssigned
	}
	p.available[sq] = false
	p.n--
	return nil
}

// Return makes a previously-assigned code available again. Codes the pool
// doesn't manage are ignored.
func (p *SquawkCodePool) Return(sq Squawk) error {
	if !p.manages(sq) {
		return nil
	}
	if p.available[sq] {
		return ErrSquawkCodeUnassigned
	}
	p.available[sq] = true
	p.n++
	return nil
}

func (p *SquawkCodePool) NumAvailable() int {
	return p.n
}
