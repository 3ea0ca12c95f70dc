// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package feedback turns routine progress into LED and sound output. The
// note and color tables live here as static data so renderers can be
// tested without hardware.
package feedback

import (
	"time"

	"github.com/relabs-tech/exercise_tracker/internal/exercise"
)

// IndicatorCount is the number of LED positions on the strip. The ten
// positions map to the ten repetition slots of a routine and double as
// color-coded pairs on the idle menu.
const IndicatorCount = 10

// Color is an 8-bit RGB triple for one indicator LED.
type Color struct {
	R, G, B uint8
}

// Off is the blanked indicator color.
var Off = Color{}

// KindColors assigns each exercise its menu and progress color.
var KindColors = map[exercise.Kind]Color{
	exercise.JumpingJacks: {R: 0, G: 255, B: 0},    // green
	exercise.Squats:       {R: 0, G: 0, B: 255},    // blue
	exercise.Situps:       {R: 128, G: 0, B: 128},  // purple
	exercise.Pushups:      {R: 255, G: 20, B: 147}, // pink
}

// IdleSlots maps each kind to its fixed indicator pair on the idle menu.
var IdleSlots = map[exercise.Kind][2]int{
	exercise.JumpingJacks: {0, 1},
	exercise.Squats:       {3, 4},
	exercise.Situps:       {5, 6},
	exercise.Pushups:      {8, 9},
}

// Note is one blocking tone: frequency in Hz and how long to hold it.
type Note struct {
	Frequency int
	Duration  time.Duration
}

// RepTone sounds once per counted repetition.
var RepTone = Note{Frequency: 440, Duration: 100 * time.Millisecond}

// StartTone sounds when a tracking session begins.
var StartTone = Note{Frequency: 523, Duration: 120 * time.Millisecond}

// CompletionMelody plays once when a routine reaches ten repetitions.
// Durations derive from a 1600 ms whole note: three eighth-note triplets,
// an eighth, a sixteenth, and a closing half note.
var CompletionMelody = []Note{
	{Frequency: 392, Duration: 133 * time.Millisecond},
	{Frequency: 523, Duration: 133 * time.Millisecond},
	{Frequency: 659, Duration: 133 * time.Millisecond},
	{Frequency: 784, Duration: 200 * time.Millisecond},
	{Frequency: 659, Duration: 100 * time.Millisecond},
	{Frequency: 784, Duration: 800 * time.Millisecond},
}

// Renderer receives routine progress from the session controller.
// Rendering is best effort: the controller logs errors and keeps going.
type Renderer interface {
	// IdleMenu shows the indicator pairs of the kinds still eligible.
	IdleMenu(eligible []exercise.Kind) error
	// SessionStarted clears the menu when a start trigger is accepted.
	SessionStarted() error
	// TrackingStarted announces the kind classification bound to.
	TrackingStarted(kind exercise.Kind) error
	// RepCompleted marks repetition rep (1-based count after counting)
	// of kind.
	RepCompleted(kind exercise.Kind, rep int) error
	// RoutineCompleted celebrates a finished routine.
	RoutineCompleted(kind exercise.Kind) error
}
