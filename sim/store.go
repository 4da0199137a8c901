// sim/store.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	gomath "math"

	"github.com/brunoga/deep"

	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/log"
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/nav"
)

// NoSelection is the selected or hovered index when no aircraft is
// selected or hovered.
const NoSelection = -1

// Bounds is the circular area that random aircraft are spawned in and,
// optionally, that aircraft are removed once they leave.
type Bounds struct {
	Center math.Point2LL
	Radius float64 // metres
}

func (b Bounds) Contains(p math.Point2LL) bool {
	return math.Distance(b.Center, p, 0) <= b.Radius
}

// Store holds the live aircraft as parallel slices indexed from 0 to
// Len()-1, plus a callsign lookup table. Removing an aircraft moves the
// last one into its slot, so indices are only stable until the next
// removal; callsigns are the stable identifier.
type Store struct {
	callsigns  []string
	types      []string
	squawks    []av.Squawk
	navs       []nav.Nav
	histories  []*PositionHistory
	approaches []string // runway cleared for, or ""

	index map[string]int
	n     int

	historyCapacity int

	bounds   Bounds
	selected int
	hovered  int

	lg *log.Logger
}

// NewStore returns a store with room for capacity aircraft, each of which
// keeps up to historyCapacity position history samples.
func NewStore(capacity, historyCapacity int, lg *log.Logger) *Store {
	capacity = max(capacity, 0)
	return &Store{
		callsigns:       make([]string, capacity),
		types:           make([]string, capacity),
		squawks:         make([]av.Squawk, capacity),
		navs:            make([]nav.Nav, capacity),
		histories:       make([]*PositionHistory, capacity),
		approaches:      make([]string, capacity),
		index:           make(map[string]int),
		historyCapacity: historyCapacity,
		selected:        NoSelection,
		hovered:         NoSelection,
		lg:              lg,
	}
}

func (s *Store) Len() int { return s.n }

func (s *Store) Cap() int { return len(s.callsigns) }

func (s *Store) valid(index int) bool {
	return index >= 0 && index < s.n
}

// checkIndex logs a warning and returns false if index doesn't refer to
// a live aircraft. Indices shift after removals, so callers that are a
// step behind are expected.
func (s *Store) checkIndex(index int, op string) bool {
	if s.valid(index) {
		return true
	}
	s.lg.Warn("invalid aircraft index", "op", op, "index", index, "count", s.n)
	return false
}

// Add adds an aircraft in the given state and returns its index. Its
// targets are its current altitude, speed and heading and its position
// history starts out with its current position.
func (s *Store) Add(callsign, actype string, squawk av.Squawk, fs nav.FlightState) (int, error) {
	if callsign == "" {
		s.lg.Warn("rejected aircraft with empty callsign")
		return -1, ErrInvalidCallsign
	}
	if _, ok := s.index[callsign]; ok {
		s.lg.Warn("rejected duplicate callsign", "callsign", callsign)
		return -1, ErrDuplicateCallsign
	}
	if s.n == s.Cap() {
		s.lg.Warn("aircraft store full", "callsign", callsign, "capacity", s.Cap())
		return -1, ErrStoreFull
	}

	i := s.n
	s.callsigns[i] = callsign
	s.types[i] = actype
	s.squawks[i] = squawk
	s.navs[i] = nav.MakeNav(fs)
	s.histories[i] = NewPositionHistory(s.historyCapacity)
	s.histories[i].AddSample(fs.Position)
	s.approaches[i] = ""
	s.index[callsign] = i
	s.n++

	s.lg.Debug("added aircraft", "callsign", callsign, "index", i, "type", actype, "squawk", squawk)

	return i, nil
}

// Remove removes the aircraft at the given index. The last aircraft is
// moved into its slot; a selection or hover of the moved aircraft follows
// it to its new index. Remove is the only way the store shrinks, so the
// selection and hover are always either NoSelection or a live index.
func (s *Store) Remove(index int) error {
	if !s.checkIndex(index, "remove") {
		return ErrInvalidIndex
	}

	s.lg.Debug("removing aircraft", "callsign", s.callsigns[index], "index", index)

	last := s.n - 1
	delete(s.index, s.callsigns[index])

	if s.selected == index {
		s.selected = NoSelection
	} else if s.selected == last {
		s.selected = index
	}
	if s.hovered == index {
		s.hovered = NoSelection
	} else if s.hovered == last {
		s.hovered = index
	}

	if index != last {
		s.callsigns[index] = s.callsigns[last]
		s.types[index] = s.types[last]
		s.squawks[index] = s.squawks[last]
		s.navs[index] = s.navs[last]
		s.histories[index] = s.histories[last]
		s.approaches[index] = s.approaches[last]
		s.index[s.callsigns[index]] = index
	}

	s.callsigns[last] = ""
	s.types[last] = ""
	s.squawks[last] = 0
	s.navs[last] = nav.Nav{}
	s.histories[last] = nil
	s.approaches[last] = ""
	s.n--

	return nil
}

func (s *Store) IndexOf(callsign string) (int, bool) {
	i, ok := s.index[callsign]
	return i, ok
}

// ByIndex returns a copy of the aircraft at the given index, or nil if
// there isn't one.
func (s *Store) ByIndex(index int) *Aircraft {
	if !s.checkIndex(index, "by index") {
		return nil
	}
	ac := &Aircraft{
		Index:           index,
		Callsign:        s.callsigns[index],
		Type:            s.types[index],
		Squawk:          s.squawks[index],
		Nav:             s.navs[index],
		ClearedApproach: s.approaches[index],
		History:         s.histories[index].Samples(),
	}
	// The targets are pointers; don't hand out ones that alias ours.
	return deep.MustCopy(ac)
}

// ByIndexImperial is ByIndex with the values converted to feet, knots and
// feet per minute.
func (s *Store) ByIndexImperial(index int) *ImperialAircraft {
	if ac := s.ByIndex(index); ac != nil {
		return ac.Imperial()
	}
	return nil
}

// Lookup returns a copy of the aircraft with the given callsign, or nil
// if there isn't one.
func (s *Store) Lookup(callsign string) *Aircraft {
	if i, ok := s.index[callsign]; ok {
		return s.ByIndex(i)
	}
	return nil
}

// Callsigns returns the callsigns of the live aircraft in index order.
func (s *Store) Callsigns() []string {
	return append([]string(nil), s.callsigns[:s.n]...)
}

// History returns the position history of the aircraft at the given
// index; it is owned by the store and must not be modified.
func (s *Store) History(index int) *PositionHistory {
	if !s.checkIndex(index, "history") {
		return nil
	}
	return s.histories[index]
}

// Nearest returns the index of the aircraft closest to p and its
// distance in metres; ok is false if there are no aircraft.
func (s *Store) Nearest(p math.Point2LL) (index int, distance float64, ok bool) {
	index, distance = NoSelection, gomath.Inf(1)
	for i := range s.n {
		if d := math.Distance(p, s.navs[i].FlightState.Position, 0); d < distance {
			index, distance, ok = i, d, true
		}
	}
	return
}

func (s *Store) SetBounds(center math.Point2LL, radius float64) {
	s.bounds = Bounds{Center: center, Radius: radius}
}

func (s *Store) Bounds() Bounds {
	return s.bounds
}

///////////////////////////////////////////////////////////////////////////
// Selection

func (s *Store) SelectAircraft(index int) error {
	if !s.checkIndex(index, "select") {
		return ErrInvalidIndex
	}
	s.selected = index
	return nil
}

func (s *Store) DeselectAircraft() {
	s.selected = NoSelection
}

// Selected returns the index of the selected aircraft or NoSelection.
func (s *Store) Selected() int {
	return s.selected
}

// SetHovered sets the hovered aircraft; NoSelection clears it.
func (s *Store) SetHovered(index int) error {
	if index != NoSelection && !s.checkIndex(index, "hover") {
		return ErrInvalidIndex
	}
	s.hovered = index
	return nil
}

// Hovered returns the index of the hovered aircraft or NoSelection.
func (s *Store) Hovered() int {
	return s.hovered
}
