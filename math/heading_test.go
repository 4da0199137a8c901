// math/heading_test.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		h, expected float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-360, 0},
		{-725, 355},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		if got := NormalizeHeading(tt.h); got != tt.expected {
			t.Errorf("NormalizeHeading(%v) = %v, expected %v", tt.h, got, tt.expected)
		}
	}
}

func TestHeadingDifference(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{10, 20, 10},
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{90, 90, 0},
	}
	for _, tt := range tests {
		if got := HeadingDifference(tt.a, tt.b); got != tt.expected {
			t.Errorf("HeadingDifference(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestHeadingSignedTurn(t *testing.T) {
	tests := []struct {
		cur, target, expected float64
	}{
		{350, 10, 20},
		{10, 350, -20},
		{90, 180, 90},
		{180, 90, -90},
		{45, 45, 0},
	}
	for _, tt := range tests {
		if got := HeadingSignedTurn(tt.cur, tt.target); got != tt.expected {
			t.Errorf("HeadingSignedTurn(%v, %v) = %v, expected %v", tt.cur, tt.target, got, tt.expected)
		}
	}
}

func TestCompass(t *testing.T) {
	for _, tt := range []struct {
		h     float64
		long  string
		short string
	}{
		{0, "North", "N"},
		{359, "North", "N"},
		{44, "Northeast", "NE"},
		{100, "East", "E"},
		{225, "Southwest", "SW"},
		{-90, "West", "W"},
	} {
		if got := Compass(tt.h); got != tt.long {
			t.Errorf("Compass(%v) = %s, expected %s", tt.h, got, tt.long)
		}
		if got := ShortCompass(tt.h); got != tt.short {
			t.Errorf("ShortCompass(%v) = %s, expected %s", tt.h, got, tt.short)
		}
	}
}

func TestOppositeHeading(t *testing.T) {
	if h := OppositeHeading(50); h != 230 {
		t.Errorf("got %v, expected 230", h)
	}
	if h := OppositeHeading(230); h != 50 {
		t.Errorf("got %v, expected 50", h)
	}
}
