// sim/sim.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"
	"log/slog"

	av "github.com/radarsim/radarsim/aviation"
	"github.com/radarsim/radarsim/log"
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/nav"
	"github.com/radarsim/radarsim/rand"
)

// Sim is a simulation context: the aircraft store plus the configuration
// and state needed to advance it. It is not safe for concurrent use; all
// calls should come from a single goroutine.
type Sim struct {
	*Store

	Config Config
	// Elapsed is the simulated time in seconds that TickAll has advanced
	// through.
	Elapsed float64

	perf           av.Performance
	historySpacing float64 // metres
	separation     struct{ horizontal, vertical float64 }

	rand  rand.Rand
	codes *av.SquawkCodePool
	lg    *log.Logger
}

// NewSim returns a Sim for the given configuration, which must be valid.
// The random number generator is seeded with 0; use Seed to vary the
// randomly-generated traffic.
func NewSim(config Config, lg *log.Logger) (*Sim, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Sim{
		Store:          NewStore(config.MaxAircraft, config.MaxHistory, lg),
		Config:         config,
		perf:           config.Performance,
		historySpacing: math.NMToMetres(config.HistorySeparationNM),
		rand:           rand.NewSeeded(0),
		codes:          av.NewSquawkCodePool(),
		lg:             lg,
	}
	s.separation.horizontal = math.NMToMetres(config.HorizontalSeparationNM)
	s.separation.vertical = math.FeetToMetres(config.VerticalSeparationFeet)
	s.SetBounds(config.Center, math.NMToMetres(config.RadiusNM))

	lg.Info("created simulation", slog.String("center", config.Center.DMSString()),
		slog.Float64("radius_nm", config.RadiusNM), slog.Int("max_aircraft", config.MaxAircraft))

	return s, nil
}

func (s *Sim) Seed(seed int64) {
	s.rand.Seed(seed)
}

func (s *Sim) Performance() av.Performance {
	return s.perf
}

// Add adds an aircraft; its squawk code is reserved so that randomly
// generated traffic won't be given the same one.
func (s *Sim) Add(callsign, actype string, squawk av.Squawk, fs nav.FlightState) (int, error) {
	i, err := s.Store.Add(callsign, actype, squawk, fs)
	if err == nil {
		// Codes outside the pool or that are already in use are fine.
		_ = s.codes.Take(squawk)
	}
	return i, err
}

// Remove removes the aircraft at the given index; see Store.Remove.
func (s *Sim) Remove(index int) error {
	if !s.valid(index) {
		return s.Store.Remove(index)
	}

	sq := s.squawks[index]
	if err := s.Store.Remove(index); err != nil {
		return err
	}
	s.releaseSquawk(sq)
	return nil
}

// RemoveCallsign removes the aircraft with the given callsign.
func (s *Sim) RemoveCallsign(callsign string) error {
	i, ok := s.IndexOf(callsign)
	if !ok {
		return ErrUnknownCallsign
	}
	return s.Remove(i)
}

// releaseSquawk returns sq to the pool unless another aircraft is still
// using it.
func (s *Sim) releaseSquawk(sq av.Squawk) {
	for i := range s.n {
		if s.squawks[i] == sq {
			return
		}
	}
	_ = s.codes.Return(sq)
}

// Squawks returns the pool that squawk codes for random traffic come
// from.
func (s *Sim) Squawks() *av.SquawkCodePool {
	return s.codes
}

// AddRandom adds an aircraft with the given identity at a uniformly
// random bearing and distance from the center of the bounds, with a
// random altitude, speed and heading within the performance envelope.
func (s *Sim) AddRandom(callsign, actype string, squawk av.Squawk) (int, error) {
	b := s.Bounds()
	r := &s.rand
	fs := nav.FlightState{
		Position: math.Destination(b.Center, r.Range(0, b.Radius), r.Range(0, 360), 0),
		Altitude: r.Range(s.perf.MinAltitude, s.perf.MaxAltitude),
		Heading:  r.Range(0, 360),
		Speed:    r.Range(s.perf.MinSpeed, s.perf.MaxSpeed),
	}
	return s.Add(callsign, actype, squawk, fs)
}

// SpawnRandom adds an aircraft from one of the configured airlines at a
// random position, with a fresh callsign and squawk code.
func (s *Sim) SpawnRandom() (int, error) {
	if s.Len() == s.Cap() {
		return -1, ErrStoreFull
	}

	callsign, actype, ok := av.SampleTraffic(&s.rand, s.Config.Airlines, func(cs string) bool {
		_, ok := s.IndexOf(cs)
		return ok
	})
	if !ok {
		return -1, ErrNoTrafficSample
	}
	sq, err := s.codes.Get(&s.rand)
	if err != nil {
		return -1, err
	}

	i, err := s.AddRandom(callsign, actype, sq)
	if err != nil {
		_ = s.codes.Return(sq)
	}
	return i, err
}

///////////////////////////////////////////////////////////////////////////
// Simulation

// Tick advances the aircraft at the given index by dt seconds. It returns
// true if the aircraft was removed for leaving the bounds, in which case
// another aircraft now occupies index.
func (s *Sim) Tick(index int, dt float64) (removed bool) {
	if !s.checkIndex(index, "tick") {
		return false
	}

	n := &s.navs[index]
	n.UpdatePosition(dt)

	pos := n.FlightState.Position
	s.histories[index].AddSampleIfFartherThan(pos, s.historySpacing)

	if s.Config.RemoveOutOfBounds && !s.bounds.Contains(pos) {
		s.lg.Info("aircraft left bounds", slog.String("callsign", s.callsigns[index]),
			slog.String("position", pos.DDString()))
		_ = s.Remove(index)
		return true
	}

	s.updateApproach(index)
	n.UpdateControls(s.callsigns[index], &s.perf, dt, s.Elapsed)

	return false
}

// TickAll advances every aircraft by dt seconds.
func (s *Sim) TickAll(dt float64) {
	for i := 0; i < s.Len(); {
		// If the aircraft was removed, another one has been moved into
		// slot i and still needs to be updated.
		if !s.Tick(i, dt) {
			i++
		}
	}
	s.Elapsed += dt
}

///////////////////////////////////////////////////////////////////////////
// Commands

// SetTargetAltitude assigns an altitude in metres, clamped to the
// performance envelope.
func (s *Sim) SetTargetAltitude(index int, alt float64) error {
	if !s.checkIndex(index, "set target altitude") {
		return ErrInvalidIndex
	}
	s.navs[index].AssignAltitude(s.perf.ClampAltitude(alt))
	return nil
}

// SetTargetSpeed assigns a speed in m/s, clamped to the performance
// envelope.
func (s *Sim) SetTargetSpeed(index int, spd float64) error {
	if !s.checkIndex(index, "set target speed") {
		return ErrInvalidIndex
	}
	s.navs[index].AssignSpeed(s.perf.ClampSpeed(spd))
	return nil
}

// SetTargetHeading assigns a heading, normalized to [0,360). An
// assigned heading cancels any approach clearance.
func (s *Sim) SetTargetHeading(index int, hdg float64) error {
	if !s.checkIndex(index, "set target heading") {
		return ErrInvalidIndex
	}
	s.navs[index].AssignHeading(hdg)
	s.approaches[index] = ""
	return nil
}

func (s *Sim) SetTargetAltitudeFeet(index int, alt float64) error {
	return s.SetTargetAltitude(index, math.FeetToMetres(alt))
}

func (s *Sim) SetTargetFlightLevel(index int, fl int) error {
	return s.SetTargetAltitudeFeet(index, float64(fl*100))
}

func (s *Sim) SetTargetSpeedKnots(index int, spd float64) error {
	return s.SetTargetSpeed(index, math.KnotsToMPS(spd))
}

// ClearTargetAltitude removes the altitude assignment; the aircraft's
// vertical speed is left as it is.
func (s *Sim) ClearTargetAltitude(index int) error {
	if !s.checkIndex(index, "clear target altitude") {
		return ErrInvalidIndex
	}
	s.navs[index].Targets.Altitude = nil
	return nil
}

func (s *Sim) ClearTargetSpeed(index int) error {
	if !s.checkIndex(index, "clear target speed") {
		return ErrInvalidIndex
	}
	s.navs[index].Targets.Speed = nil
	return nil
}

func (s *Sim) ClearTargetHeading(index int) error {
	if !s.checkIndex(index, "clear target heading") {
		return ErrInvalidIndex
	}
	s.navs[index].Targets.Heading = nil
	return nil
}

// Update applies the non-nil fields of u to the aircraft with the given
// callsign. Targets are clamped and normalized as by the individual
// setters.
func (s *Sim) Update(callsign string, u AircraftUpdate) error {
	i, ok := s.IndexOf(callsign)
	if !ok {
		s.lg.Warn("update of unknown aircraft", slog.String("callsign", callsign))
		return fmt.Errorf("%s: %w", callsign, ErrUnknownCallsign)
	}

	fs := &s.navs[i].FlightState
	if u.Type != nil {
		s.types[i] = *u.Type
	}
	if u.Squawk != nil && *u.Squawk != s.squawks[i] {
		old := s.squawks[i]
		s.squawks[i] = *u.Squawk
		_ = s.codes.Take(*u.Squawk)
		s.releaseSquawk(old)
	}
	if u.Position != nil {
		fs.Position = *u.Position
	}
	if u.Altitude != nil {
		fs.Altitude = *u.Altitude
	}
	if u.Heading != nil {
		fs.Heading = math.NormalizeHeading(*u.Heading)
	}
	if u.Speed != nil {
		fs.Speed = *u.Speed
	}
	if u.VerticalSpeed != nil {
		fs.VerticalSpeed = *u.VerticalSpeed
	}
	if u.TargetAltitude != nil {
		_ = s.SetTargetAltitude(i, *u.TargetAltitude)
	}
	if u.TargetSpeed != nil {
		_ = s.SetTargetSpeed(i, *u.TargetSpeed)
	}
	if u.TargetHeading != nil {
		_ = s.SetTargetHeading(i, *u.TargetHeading)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////
// Queries

// TurnRadius returns the radius in metres of a standard turn for the
// aircraft at the given index at its current speed.
func (s *Sim) TurnRadius(index int) (float64, bool) {
	if !s.checkIndex(index, "turn radius") {
		return 0, false
	}
	return nav.TurnRadius(s.navs[index].FlightState.Speed, s.perf.Rate.Turn), true
}

// DistanceToIntercept returns how far the aircraft at the given index
// will fly on its current heading before crossing the course through fix.
func (s *Sim) DistanceToIntercept(index int, fix math.Point2LL, course float64) (float64, bool) {
	if !s.checkIndex(index, "distance to intercept") {
		return 0, false
	}
	return s.navs[index].DistanceToIntercept(fix, course)
}

// HoverNear marks the aircraft closest to p as hovered if it is within
// half the horizontal separation minimum, and clears the hover otherwise.
// It returns the hovered index.
func (s *Sim) HoverNear(p math.Point2LL) int {
	h := NoSelection
	if i, d, ok := s.Nearest(p); ok && d < s.separation.horizontal/2 {
		h = i
	}
	_ = s.SetHovered(h)
	return h
}

// Snapshot returns copies of all of the live aircraft.
func (s *Sim) Snapshot() []Aircraft {
	snap := make([]Aircraft, 0, s.Len())
	for i := range s.Len() {
		snap = append(snap, *s.ByIndex(i))
	}
	return snap
}

// State is the whole-simulation state, e.g. for dumping.
type State struct {
	Elapsed   float64
	Bounds    Bounds
	Aircraft  []Aircraft
	Incidents []Incident
}

func (s *Sim) State() State {
	return State{
		Elapsed:   s.Elapsed,
		Bounds:    s.Bounds(),
		Aircraft:  s.Snapshot(),
		Incidents: s.CheckSeparation(),
	}
}
