// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package exercise

import (
	"time"

	"github.com/relabs-tech/exercise_tracker/internal/motion"
)

// Detector is a per-exercise repetition detector. It is fed one sample per
// tick while a tracking session is active and reports true for the sample
// that completes a repetition. Detector state is created fresh for each
// session and never carries over.
//
// A repetition counts only on the transition back into the reference
// phase, never on entering the active phase, so a partial movement never
// increments the count. Re-feeding a sample that causes no phase change is
// a no-op.
type Detector interface {
	Kind() Kind
	// Interval is the sampling cadence the session loop must use with
	// this detector.
	Interval() time.Duration
	Observe(s motion.Sample) bool
}

// phase is the half-cycle a two-phase detector believes the wearer is in.
type phase int

const (
	phaseDown phase = iota
	phaseUp
)

// situpDetector compares x against y. Reference phase is down (torso
// back); a rep completes when the wearer returns down after sitting up.
type situpDetector struct {
	interval time.Duration
	phase    phase
}

// NewSitupDetector creates a sit-up detector in the down phase.
func NewSitupDetector(p Params) Detector {
	return &situpDetector{interval: p.SitupInterval, phase: phaseDown}
}

func (d *situpDetector) Kind() Kind              { return Situps }
func (d *situpDetector) Interval() time.Duration { return d.interval }

func (d *situpDetector) Observe(s motion.Sample) bool {
	switch {
	case s.X < s.Y:
		d.phase = phaseUp
	case s.X > s.Y:
		if d.phase == phaseUp {
			d.phase = phaseDown
			return true
		}
		d.phase = phaseDown
	}
	// x == y: hold the current phase.
	return false
}

// pushupDetector compares z against x. Reference phase is up (arms
// extended); a rep completes on pushing back up.
type pushupDetector struct {
	interval time.Duration
	phase    phase
}

// NewPushupDetector creates a push-up detector in the up phase.
func NewPushupDetector(p Params) Detector {
	return &pushupDetector{interval: p.PushupInterval, phase: phaseUp}
}

func (d *pushupDetector) Kind() Kind              { return Pushups }
func (d *pushupDetector) Interval() time.Duration { return d.interval }

func (d *pushupDetector) Observe(s motion.Sample) bool {
	switch {
	case s.Z > s.X:
		if d.phase == phaseDown {
			d.phase = phaseUp
			return true
		}
		d.phase = phaseUp
	case s.Z < s.X:
		d.phase = phaseDown
	}
	return false
}

// squatDetector compares z against y. Reference phase is up (standing);
// a rep completes on standing back up.
type squatDetector struct {
	interval time.Duration
	phase    phase
}

// NewSquatDetector creates a squat detector in the up phase.
func NewSquatDetector(p Params) Detector {
	return &squatDetector{interval: p.SquatInterval, phase: phaseUp}
}

func (d *squatDetector) Kind() Kind              { return Squats }
func (d *squatDetector) Interval() time.Duration { return d.interval }

func (d *squatDetector) Observe(s motion.Sample) bool {
	switch {
	case s.Z > s.Y:
		if d.phase == phaseDown {
			d.phase = phaseUp
			return true
		}
		d.phase = phaseUp
	case s.Z < s.Y:
		d.phase = phaseDown
	}
	return false
}

// jumpingJackDetector has no phase: every tick at or below the x threshold
// registers one jump, and every second jump completes a repetition.
type jumpingJackDetector struct {
	interval  time.Duration
	threshold float64
	jumps     int
}

// NewJumpingJackDetector creates a jumping-jack detector. observedJumps is
// the number of jumps already seen before the session bound to this
// detector; classification consumes one, so the controller passes 1 there.
func NewJumpingJackDetector(p Params, observedJumps int) Detector {
	return &jumpingJackDetector{
		interval:  p.JumpInterval,
		threshold: p.JumpThreshold,
		jumps:     observedJumps,
	}
}

func (d *jumpingJackDetector) Kind() Kind              { return JumpingJacks }
func (d *jumpingJackDetector) Interval() time.Duration { return d.interval }

func (d *jumpingJackDetector) Observe(s motion.Sample) bool {
	if s.X > d.threshold {
		return false
	}
	d.jumps++
	return d.jumps%2 == 0
}
