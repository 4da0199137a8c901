// rand/rand_test.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"testing"
)

func TestSeedReproducible(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := range 100 {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("draw %d: %d != %d with the same seed", i, x, y)
		}
	}

	c := NewSeeded(43)
	a = NewSeeded(42)
	same := 0
	for range 100 {
		if a.Uint32() == c.Uint32() {
			same++
		}
	}
	if same > 5 {
		t.Errorf("%d/100 matching draws with different seeds", same)
	}
}

func TestFloat64Range(t *testing.T) {
	r := NewSeeded(7)
	var sum float64
	const n = 10000
	for range n {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 returned %f", v)
		}
		sum += v
	}
	if mean := sum / n; mean < 0.45 || mean > 0.55 {
		t.Errorf("mean %f is implausible for a uniform distribution", mean)
	}
}

func TestIntnAndRange(t *testing.T) {
	r := NewSeeded(1)
	seen := make(map[int]bool)
	for range 1000 {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("only saw %d distinct values from Intn(5)", len(seen))
	}

	for range 1000 {
		if v := r.Range(-3, 3); v < -3 || v >= 3 {
			t.Fatalf("Range(-3,3) returned %f", v)
		}
	}

	s := []string{"a", "b", "c"}
	for range 10 {
		v := SampleSlice(&r, s)
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("SampleSlice returned %q", v)
		}
	}
}
