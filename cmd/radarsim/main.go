// cmd/radarsim/main.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// radarsim runs the simulation either on a terminal radar scope or,
// with -headless, for a fixed number of steps with the separation
// incidents printed as they occur.

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goforj/godump"

	"github.com/radarsim/radarsim/log"
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/nav"
	"github.com/radarsim/radarsim/sim"
)

var (
	configFilename   = flag.String("config", "", "filename of JSON file with the simulation configuration")
	logLevel         = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir           = flag.String("logdir", "", "log file directory")
	seed             = flag.Int64("seed", time.Now().UnixNano(), "random seed for generated traffic")
	numAircraft      = flag.Int("aircraft", 10, "number of aircraft to spawn at startup")
	updateRate       = flag.Float64("rate", 10, "simulation updates per second (scope only)")
	headless         = flag.Bool("headless", false, "run without the scope and print separation incidents")
	steps            = flag.Int("steps", 3600, "number of updates to run when headless")
	stepSeconds      = flag.Float64("dt", 1, "simulated seconds per update when headless")
	dumpState        = flag.Bool("dump", false, "dump the final simulation state when headless")
	dumpConfig       = flag.Bool("dumpconfig", false, "print the configuration and exit")
	navLog           = flag.Bool("navlog", false, "enable navigation logging")
	navLogCategories = flag.String("navlog-categories", "all", "navigation log categories (comma-separated: state,altitude,speed,heading)")
	navLogCallsign   = flag.String("navlog-callsign", "", "filter navigation logs to only show this callsign (empty = show all)")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	config, err := loadConfig(*configFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *configFilename, err)
		lg.Errorf("%s: %v", *configFilename, err)
		os.Exit(1)
	}
	if *dumpConfig {
		godump.Dump(config)
		return
	}

	nav.InitNavLog(*navLog, *navLogCategories, *navLogCallsign)

	s, err := sim.NewSim(config, lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	s.Seed(*seed)
	lg.Info("seeded simulation", "seed", *seed)

	for range min(*numAircraft, config.MaxAircraft) {
		if _, err := s.SpawnRandom(); err != nil {
			lg.Warnf("unable to spawn aircraft: %v", err)
			break
		}
	}

	if *headless {
		runHeadless(s, lg)
	} else if err := runScope(s, *updateRate, lg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func loadConfig(fn string) (sim.Config, error) {
	if fn == "" {
		return sim.DefaultConfig(), nil
	}
	f, err := os.Open(fn)
	if err != nil {
		return sim.Config{}, err
	}
	defer f.Close()
	return sim.LoadConfig(f)
}

func runHeadless(s *sim.Sim, lg *log.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("Running %d updates of %.2fs with %d aircraft\n", *steps, *stepSeconds, s.Len())

	start := time.Now()
	// Only report incidents when they start, not on every update.
	active := make(map[[2]string]bool)
loop:
	for range *steps {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "Caught signal, stopping")
			break loop
		default:
		}

		s.TickAll(*stepSeconds)

		callsigns := s.Callsigns()
		current := make(map[[2]string]bool)
		for _, inc := range s.CheckSeparation() {
			key := [2]string{callsigns[inc.A], callsigns[inc.B]}
			current[key] = true
			if !active[key] {
				fmt.Printf("T+%7.1fs  %s\n", s.Elapsed, incidentText(s, inc))
			}
		}
		active = current
	}

	elapsed := time.Since(start)
	fmt.Printf("Simulation complete: %.0fs simulated in %.2fs, %d aircraft remaining\n",
		s.Elapsed, elapsed.Seconds(), s.Len())
	lg.Info("headless run complete", "elapsed", s.Elapsed, "wallclock", elapsed, "aircraft", s.Len())

	if *dumpState {
		godump.Dump(s.State())
	}
}

// incidentText describes a separation incident, giving the position of
// the second aircraft relative to the first.
func incidentText(s *sim.Sim, inc sim.Incident) string {
	a, b := s.ByIndex(inc.A), s.ByIndex(inc.B)
	if a == nil || b == nil {
		return "stale incident"
	}
	dir := math.Compass(math.Bearing(a.FlightState.Position, b.FlightState.Position))
	return fmt.Sprintf("%-8s %-8s %5.2f nm %5.0f ft  %s %s of %s", a.Callsign, b.Callsign,
		math.MetresToNM(inc.Horizontal), math.MetresToFeet(inc.Vertical), b.Callsign, dir, a.Callsign)
}
