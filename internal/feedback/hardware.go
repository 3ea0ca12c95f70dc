// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package feedback

import (
	"fmt"

	"github.com/relabs-tech/exercise_tracker/internal/exercise"
)

// Strip renders all indicator pixels in one write.
type Strip interface {
	SetPixels(colors []Color) error
}

// Tone plays one note and blocks for its duration.
type Tone interface {
	Play(n Note) error
}

// HardwareRenderer drives the LED strip and buzzer. It keeps a local copy
// of the pixel state so single-slot updates rewrite the whole strip.
type HardwareRenderer struct {
	strip  Strip
	tone   Tone
	pixels [IndicatorCount]Color
}

// NewHardwareRenderer wires a renderer to the given strip and buzzer.
func NewHardwareRenderer(strip Strip, tone Tone) *HardwareRenderer {
	return &HardwareRenderer{strip: strip, tone: tone}
}

func (r *HardwareRenderer) flush() error {
	return r.strip.SetPixels(r.pixels[:])
}

func (r *HardwareRenderer) clear() {
	for i := range r.pixels {
		r.pixels[i] = Off
	}
}

func (r *HardwareRenderer) IdleMenu(eligible []exercise.Kind) error {
	r.clear()
	for _, k := range eligible {
		slots, ok := IdleSlots[k]
		if !ok {
			return fmt.Errorf("no idle slots for kind %s", k)
		}
		r.pixels[slots[0]] = KindColors[k]
		r.pixels[slots[1]] = KindColors[k]
	}
	return r.flush()
}

func (r *HardwareRenderer) SessionStarted() error {
	r.clear()
	if err := r.flush(); err != nil {
		return err
	}
	return r.tone.Play(StartTone)
}

// TrackingStarted is visible on the strip only through the reps that
// follow; the strip was already cleared when the session started.
func (r *HardwareRenderer) TrackingStarted(kind exercise.Kind) error {
	return nil
}

func (r *HardwareRenderer) RepCompleted(kind exercise.Kind, rep int) error {
	if rep < 1 || rep > IndicatorCount {
		return fmt.Errorf("rep %d out of indicator range", rep)
	}
	r.pixels[rep-1] = KindColors[kind]
	if err := r.flush(); err != nil {
		return err
	}
	return r.tone.Play(RepTone)
}

func (r *HardwareRenderer) RoutineCompleted(kind exercise.Kind) error {
	for i := range r.pixels {
		r.pixels[i] = KindColors[kind]
	}
	if err := r.flush(); err != nil {
		return err
	}
	for _, n := range CompletionMelody {
		if err := r.tone.Play(n); err != nil {
			return err
		}
	}
	return nil
}
