//go:build navlog

// nav/log_debug.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"fmt"
	"strings"
)

var (
	navlogEnabled    bool
	navlogCategories map[string]bool
	navlogCallsign   string // only log this callsign (empty = log all)
)

// InitNavLog initializes the navigation logging system
func InitNavLog(enabled bool, categories string, callsign string) {
	navlogEnabled = enabled
	navlogCategories = make(map[string]bool)
	navlogCallsign = strings.TrimSpace(callsign)

	if !enabled {
		return
	}

	if categories == "" || categories == "all" {
		for _, cat := range []string{NavLogState, NavLogAltitude, NavLogSpeed, NavLogHeading} {
			navlogCategories[cat] = true
		}
	} else {
		for cat := range strings.SplitSeq(categories, ",") {
			navlogCategories[strings.TrimSpace(cat)] = true
		}
	}
}

// NavLog logs a message with the elapsed simulation time, callsign, and
// category.
func NavLog(callsign string, elapsed float64, category string, format string, args ...any) {
	if !NavLogEnabled(category) {
		return
	}
	if navlogCallsign != "" && navlogCallsign != callsign {
		return
	}

	// Format: [T+seconds] [callsign] [category] message
	fmt.Printf("[T+%8.1f] [%s] [%s] %s\n", elapsed, callsign, category, fmt.Sprintf(format, args...))
}

// NavLogEnabled returns whether navigation logging is enabled for a given category
func NavLogEnabled(category string) bool {
	return navlogEnabled && navlogCategories[category]
}
