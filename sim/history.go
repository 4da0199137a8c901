// sim/history.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"github.com/radarsim/radarsim/math"
	"github.com/radarsim/radarsim/util"
)

// PositionHistory is the trail of recent positions drawn behind an
// aircraft. Its capacity is fixed when it is created; once full, adding
// a sample evicts the oldest one. Samples are indexed newest-first.
type PositionHistory struct {
	samples *util.RingBuffer[math.Point2LL]
}

func NewPositionHistory(capacity int) *PositionHistory {
	return &PositionHistory{samples: util.NewRingBuffer[math.Point2LL](capacity)}
}

func (h *PositionHistory) AddSample(p math.Point2LL) {
	h.samples.Add(p)
}

// AddSampleIfFartherThan adds p if the history is empty or p is more than
// minDistance metres from the latest sample. It returns true if p was
// added.
func (h *PositionHistory) AddSampleIfFartherThan(p math.Point2LL, minDistance float64) bool {
	if h.Len() > 0 && math.Distance(h.Latest(), p, 0) <= minDistance {
		return false
	}
	h.AddSample(p)
	return true
}

// SampleAt returns the i-th newest sample, or math.NoPosition if there
// isn't one.
func (h *PositionHistory) SampleAt(i int) math.Point2LL {
	if i < 0 || i >= h.Len() {
		return math.NoPosition
	}
	return h.samples.Newest(i)
}

func (h *PositionHistory) Latest() math.Point2LL {
	return h.SampleAt(0)
}

func (h *PositionHistory) Len() int {
	return h.samples.Size()
}

func (h *PositionHistory) Cap() int {
	return h.samples.Cap()
}

// Samples returns a copy of the history, newest first.
func (h *PositionHistory) Samples() []math.Point2LL {
	s := make([]math.Point2LL, h.Len())
	for i := range s {
		s[i] = h.samples.Newest(i)
	}
	return s
}
