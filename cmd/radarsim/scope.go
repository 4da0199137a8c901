// cmd/radarsim/scope.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/radarsim/radarsim/log"
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/sim"
)

var (
	styleDefault   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleRing      = styleDefault.Foreground(tcell.ColorDarkGreen)
	styleRunway    = styleDefault.Foreground(tcell.ColorGray)
	styleApproach  = styleDefault.Foreground(tcell.ColorSteelBlue)
	styleTrail     = styleDefault.Foreground(tcell.ColorDarkGray)
	styleAircraft  = styleDefault.Foreground(tcell.ColorLime)
	styleConflict  = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDisplayed = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus    = styleDefault.Foreground(tcell.ColorAqua)
	stylePaused    = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleHelp      = styleDefault.Foreground(tcell.ColorGray)
)

// Rows at the bottom of the screen used for text rather than the scope.
const statusRows = 3

///////////////////////////////////////////////////////////////////////////
// scopeTransform

// scopeTransform maps between latitude-longitude and terminal cells.
// Cells are taken to be twice as tall as they are wide.
type scopeTransform struct {
	llToCell, cellToLL math.Matrix3
}

// makeScopeTransform returns a transform that fits a circle of the given
// radius around center into a width by height grid of cells.
func makeScopeTransform(center math.Point2LL, radiusNM float64, width, height int) scopeTransform {
	w, h := float64(max(width, 4)), float64(max(height, 4))
	nmPerCol := max(2*radiusNM/(w-2), radiusNM/(h-1))
	nmPerRow := 2 * nmPerCol

	m := math.Identity3x3().
		Translate(w/2, h/2).
		Scale(1/nmPerCol, -1/nmPerRow).
		Scale(math.NMPerLatitude*gomath.Cos(math.Radians(center.Latitude())), math.NMPerLatitude).
		Translate(-center.Longitude(), -center.Latitude())
	return scopeTransform{llToCell: m, cellToLL: m.Inverse()}
}

func (t scopeTransform) Cell(p math.Point2LL) (x, y int) {
	c := t.llToCell.TransformPoint(p)
	return int(gomath.Floor(c[0])), int(gomath.Floor(c[1]))
}

// LatLong returns the position at the center of the given cell.
func (t scopeTransform) LatLong(x, y int) math.Point2LL {
	return t.cellToLL.TransformPoint([2]float64{float64(x) + 0.5, float64(y) + 0.5})
}

// headingSymbol returns the arrow that is closest to the given heading.
func headingSymbol(hdg float64) rune {
	arrows := []rune("↑↗→↘↓↙←↖")
	return arrows[int(gomath.Round(math.NormalizeHeading(hdg)/45))%len(arrows)]
}

///////////////////////////////////////////////////////////////////////////
// scope

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
	cmdSelectNext
	cmdSelectPrevious
	cmdDeselect
	cmdTurnLeft
	cmdTurnRight
	cmdClimb
	cmdDescend
	cmdFaster
	cmdSlower
	cmdSpawn
	cmdRemove
	cmdTrails
	cmdApproach
	cmdCancelApproach
)

// Command step sizes.
const (
	headingStep  = 5    // degrees
	altitudeStep = 1000 // feet
	speedStep    = 10   // knots
)

type scope struct {
	screen tcell.Screen
	sim    *sim.Sim
	lg     *log.Logger
	xf     scopeTransform

	paused bool
	trails bool

	mouseValid bool
	mouseX     int
	mouseY     int

	message string
}

func runScope(s *sim.Sim, rate float64, lg *log.Logger) error {
	if rate <= 0 {
		rate = 10
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(styleDefault)
	screen.EnableMouse(tcell.MouseMotionEvents)

	sc := &scope{screen: screen, sim: s, lg: lg, trails: true}
	sc.resize()

	// PollEvent blocks, so events are read on their own goroutine and
	// handed to the main loop, which owns the simulation.
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// The screen has been finalized.
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	dt := 1 / rate
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	lg.Info("starting scope", "rate", rate, "aircraft", s.Len())

	for {
		sc.draw()
		screen.Show()

		select {
		case <-ticker.C:
			if !sc.paused {
				s.TickAll(dt)
			}

		case ev := <-events:
			if sc.handleEvent(ev) == cmdQuit {
				lg.Info("quitting", "elapsed", s.Elapsed)
				return nil
			}
		}
	}
}

func (sc *scope) resize() {
	w, h := sc.screen.Size()
	b := sc.sim.Bounds()
	sc.xf = makeScopeTransform(b.Center, math.MetresToNM(b.Radius), w, h-statusRows)
}

// handleEvent translates a tcell event into a command and applies it.
func (sc *scope) handleEvent(ev tcell.Event) command {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		sc.screen.Sync()
		sc.resize()

	case *tcell.EventMouse:
		sc.mouseX, sc.mouseY = ev.Position()
		sc.mouseValid = true

		// Following the scroll wheel: heading by default, altitude with
		// shift and speed with control.
		var dir float64
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelUp != 0:
			dir = 1
		case btn&tcell.WheelDown != 0:
			dir = -1
		case btn&tcell.Button1 != 0:
			sc.selectHovered()
		}
		if dir != 0 {
			switch mod := ev.Modifiers(); {
			case mod&tcell.ModShift != 0:
				sc.adjust(0, dir*100, 0)
			case mod&tcell.ModCtrl != 0:
				sc.adjust(0, 0, dir)
			default:
				sc.adjust(dir, 0, 0)
			}
		}

	case *tcell.EventKey:
		cmd := keyCommand(ev)
		sc.apply(cmd)
		return cmd
	}
	return cmdNone
}

func keyCommand(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyEscape:
		return cmdDeselect
	case tcell.KeyTab:
		return cmdSelectNext
	case tcell.KeyBacktab:
		return cmdSelectPrevious
	case tcell.KeyLeft:
		return cmdTurnLeft
	case tcell.KeyRight:
		return cmdTurnRight
	case tcell.KeyUp:
		return cmdClimb
	case tcell.KeyDown:
		return cmdDescend
	case tcell.KeyDelete:
		return cmdRemove
	case tcell.KeyRune:
		return runeCommand(ev.Rune())
	}
	return cmdNone
}

func runeCommand(r rune) command {
	switch r {
	case 'q':
		return cmdQuit
	case ' ':
		return cmdPause
	case '+', '=':
		return cmdFaster
	case '-', '_':
		return cmdSlower
	case 'a':
		return cmdSpawn
	case 'x':
		return cmdRemove
	case 'h':
		return cmdTrails
	case 'l':
		return cmdApproach
	case 'L':
		return cmdCancelApproach
	}
	return cmdNone
}

// displayed returns the index of the aircraft that commands apply to and
// whose details are shown: the selected one, or else the hovered one.
func (sc *scope) displayed() int {
	if i := sc.sim.Selected(); i != sim.NoSelection {
		return i
	}
	return sc.sim.Hovered()
}

func (sc *scope) apply(cmd command) {
	if cmd == cmdNone {
		return
	}
	sc.lg.Debug("scope command", "command", int(cmd), "displayed", sc.displayed())

	s := sc.sim
	switch cmd {
	case cmdPause:
		sc.paused = !sc.paused
	case cmdSelectNext, cmdSelectPrevious:
		if n := s.Len(); n > 0 {
			i := s.Selected()
			if cmd == cmdSelectNext {
				i = (i + 1) % n
			} else if i <= 0 {
				i = n - 1
			} else {
				i--
			}
			_ = s.SelectAircraft(i)
		}
	case cmdDeselect:
		s.DeselectAircraft()
	case cmdTurnLeft:
		sc.adjust(-headingStep, 0, 0)
	case cmdTurnRight:
		sc.adjust(headingStep, 0, 0)
	case cmdClimb:
		sc.adjust(0, altitudeStep, 0)
	case cmdDescend:
		sc.adjust(0, -altitudeStep, 0)
	case cmdFaster:
		sc.adjust(0, 0, speedStep)
	case cmdSlower:
		sc.adjust(0, 0, -speedStep)
	case cmdSpawn:
		if i, err := s.SpawnRandom(); err != nil {
			sc.message = err.Error()
		} else {
			sc.message = "spawned " + s.Callsigns()[i]
		}
	case cmdRemove:
		if i := sc.displayed(); i != sim.NoSelection {
			cs := s.Callsigns()[i]
			if err := s.Remove(i); err == nil {
				sc.message = "removed " + cs
			}
		}
	case cmdTrails:
		sc.trails = !sc.trails
	case cmdApproach:
		sc.clearApproach()
	case cmdCancelApproach:
		if i := sc.displayed(); i != sim.NoSelection {
			_ = s.CancelApproach(i)
		}
	}
}

// adjust changes the displayed aircraft's targets by the given amounts
// in degrees, feet and knots. Changes are relative to the current target
// if there is one and to the current value otherwise.
func (sc *scope) adjust(hdg, alt, spd float64) {
	i := sc.displayed()
	if i == sim.NoSelection {
		return
	}
	ac := sc.sim.ByIndexImperial(i)

	if hdg != 0 {
		cur := ac.Heading
		if ac.TargetHeading != nil {
			cur = *ac.TargetHeading
		}
		_ = sc.sim.SetTargetHeading(i, gomath.Round(cur)+hdg)
	}
	if alt != 0 {
		cur := ac.Altitude
		if ac.TargetAltitude != nil {
			cur = *ac.TargetAltitude
		}
		_ = sc.sim.SetTargetAltitudeFeet(i, gomath.Round(cur/100)*100+alt)
	}
	if spd != 0 {
		cur := ac.Speed
		if ac.TargetSpeed != nil {
			cur = *ac.TargetSpeed
		}
		_ = sc.sim.SetTargetSpeedKnots(i, gomath.Round(cur)+spd)
	}
}

// clearApproach clears the displayed aircraft for the first runway whose
// final approach course it can intercept from its present heading.
func (sc *scope) clearApproach() {
	i := sc.displayed()
	if i == sim.NoSelection {
		return
	}
	for _, rwy := range sc.sim.Config.Runways {
		if ic, ok, err := sc.sim.Intercept(i, rwy.ID); err == nil && ok && ic.Angle < sim.MaxInterceptAngle {
			_ = sc.sim.ClearApproach(i, rwy.ID)
			sc.message = fmt.Sprintf("%s cleared for runway %s", sc.sim.Callsigns()[i], rwy.ID)
			return
		}
	}
	sc.message = "no final approach course to intercept"
}

func (sc *scope) selectHovered() {
	if i := sc.sim.Hovered(); i != sim.NoSelection {
		_ = sc.sim.SelectAircraft(i)
	} else {
		sc.sim.DeselectAircraft()
	}
}

///////////////////////////////////////////////////////////////////////////
// Drawing

func (sc *scope) set(x, y int, r rune, style tcell.Style) {
	w, h := sc.screen.Size()
	if x >= 0 && x < w && y >= 0 && y < h-statusRows {
		sc.screen.SetContent(x, y, r, nil, style)
	}
}

// drawText draws a string at the given position.
func (sc *scope) drawText(x, y int, style tcell.Style, text string) {
	w, _ := sc.screen.Size()
	for _, r := range text {
		if x >= w {
			break
		}
		sc.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (sc *scope) draw() {
	s := sc.sim
	sc.screen.Clear()
	_, h := sc.screen.Size()

	if sc.mouseValid {
		s.HoverNear(sc.xf.LatLong(sc.mouseX, sc.mouseY))
	}

	b := s.Bounds()
	for brg := 0.0; brg < 360; brg += 2 {
		x, y := sc.xf.Cell(math.Destination(b.Center, b.Radius, brg, 0))
		sc.set(x, y, '·', styleRing)
	}

	for _, rwy := range s.Config.Runways {
		for nm := 1.0; nm <= 10; nm++ {
			p := math.Destination(rwy.Position, math.NMToMetres(nm), math.OppositeHeading(rwy.Course), 0)
			x, y := sc.xf.Cell(p)
			sc.set(x, y, '∙', styleApproach)
		}
	}
	for _, rwy := range s.Config.Runways {
		x, y := sc.xf.Cell(rwy.Position)
		sc.set(x, y, '#', styleRunway)
	}

	incidents := s.CheckSeparation()
	involved := sim.Involved(incidents, s.Len())
	disp := sc.displayed()

	if sc.trails {
		for i := range s.Len() {
			hist := s.History(i)
			for j := 1; j < hist.Len(); j++ {
				x, y := sc.xf.Cell(hist.SampleAt(j))
				sc.set(x, y, '.', styleTrail)
			}
		}
	}

	for i := range s.Len() {
		ac := s.ByIndexImperial(i)
		style := styleAircraft
		if involved[i] {
			style = styleConflict
		} else if i == disp {
			style = styleDisplayed
		}

		x, y := sc.xf.Cell(ac.Position)
		sc.set(x, y, headingSymbol(ac.Heading), style)
		for j, r := range ac.Callsign {
			sc.set(x+2+j, y, r, style)
		}
		for j, r := range []rune(dataBlock(ac)) {
			sc.set(x+2+j, y+1, r, style)
		}
	}

	if disp != sim.NoSelection {
		sc.drawText(0, h-3, styleStatus, sc.details(disp))
	}

	status := fmt.Sprintf("T+%6.0fs  %d aircraft  %d incidents", s.Elapsed, s.Len(), len(incidents))
	if sc.message != "" {
		status += "  " + sc.message
	}
	sc.drawText(0, h-2, styleStatus, status)
	if sc.paused {
		sc.drawText(0, h-2, stylePaused, "PAUSED")
	}
	sc.drawText(0, h-1, styleHelp,
		"[Tab] select  [←→] hdg  [↑↓] alt  [+-] spd  [l] approach  [a] add  [x] remove  [h] trails  [space] pause  [q] quit")
}

// dataBlock returns the second line of an aircraft's label: its flight
// level, a climb or descent arrow and the assigned level if it's
// changing level, and its speed.
func dataBlock(ac *sim.ImperialAircraft) string {
	fl := fmt.Sprintf("%03d", ac.FlightLevel)
	if ac.TargetAltitude != nil {
		if tfl := sim.FlightLevel(math.FeetToMetres(*ac.TargetAltitude)); tfl > ac.FlightLevel {
			fl += fmt.Sprintf("↑%03d", tfl)
		} else if tfl < ac.FlightLevel {
			fl += fmt.Sprintf("↓%03d", tfl)
		}
	}
	return fmt.Sprintf("%s %03.0f", fl, ac.Speed)
}

// details describes an aircraft's state and assignments, with its
// intercept of the runway it is cleared for, or else the first runway.
func (sc *scope) details(i int) string {
	s := sc.sim
	ac := s.ByIndex(i)
	ia := ac.Imperial()

	str := fmt.Sprintf("%s %s %s  hdg %03.0f %s", ia.Callsign, ia.Type, ia.Squawk, ia.Heading,
		math.ShortCompass(ia.Heading))
	if ia.TargetHeading != nil && *ia.TargetHeading != ia.Heading {
		str += fmt.Sprintf("→%03.0f", *ia.TargetHeading)
	}
	str += fmt.Sprintf("  %.0fft", ia.Altitude)
	if ia.TargetAltitude != nil && gomath.Abs(*ia.TargetAltitude-ia.Altitude) >= 1 {
		str += fmt.Sprintf("→%.0f", *ia.TargetAltitude)
	}
	str += fmt.Sprintf("  %.0fkt", ia.Speed)
	if ia.TargetSpeed != nil && gomath.Abs(*ia.TargetSpeed-ia.Speed) >= 1 {
		str += fmt.Sprintf("→%.0f", *ia.TargetSpeed)
	}
	str += fmt.Sprintf("  %+.0ffpm", ia.VerticalSpeed)

	rwy := ac.ClearedApproach
	if rwy == "" && len(s.Config.Runways) > 0 {
		rwy = s.Config.Runways[0].ID
	} else if rwy != "" {
		str += "  cleared " + rwy
	}
	if rwy != "" {
		if ic, ok, err := s.Intercept(i, rwy); err == nil && ok {
			str += fmt.Sprintf("  rwy %s: %.1fnm at %.0f°", rwy, math.MetresToNM(ic.Distance), ic.Angle)
		}
	}
	return str
}
