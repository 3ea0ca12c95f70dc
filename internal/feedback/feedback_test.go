// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package feedback

import (
	"testing"
	"time"

	"github.com/relabs-tech/exercise_tracker/internal/exercise"
)

// fakeStrip records the last pixel state written.
type fakeStrip struct {
	last   []Color
	writes int
}

func (f *fakeStrip) SetPixels(colors []Color) error {
	f.last = append([]Color(nil), colors...)
	f.writes++
	return nil
}

// fakeTone records every note played.
type fakeTone struct {
	notes []Note
}

func (f *fakeTone) Play(n Note) error {
	f.notes = append(f.notes, n)
	return nil
}

func TestIdleSlotTable(t *testing.T) {
	// Every kind has a pair, every slot is used at most once, and all
	// slots are on the strip.
	used := map[int]exercise.Kind{}
	for _, k := range exercise.Kinds {
		slots, ok := IdleSlots[k]
		if !ok {
			t.Fatalf("no idle slots for %s", k)
		}
		for _, s := range slots {
			if s < 0 || s >= IndicatorCount {
				t.Errorf("%s slot %d out of range", k, s)
			}
			if prev, clash := used[s]; clash {
				t.Errorf("slot %d shared by %s and %s", s, prev, k)
			}
			used[s] = k
		}
		if _, ok := KindColors[k]; !ok {
			t.Errorf("no color for %s", k)
		}
	}
}

func TestCompletionMelodyShape(t *testing.T) {
	wantFreqs := []int{392, 523, 659, 784, 659, 784}
	if len(CompletionMelody) != len(wantFreqs) {
		t.Fatalf("melody has %d notes, want %d", len(CompletionMelody), len(wantFreqs))
	}
	for i, n := range CompletionMelody {
		if n.Frequency != wantFreqs[i] {
			t.Errorf("note %d frequency = %d, want %d", i, n.Frequency, wantFreqs[i])
		}
		if n.Duration <= 0 {
			t.Errorf("note %d has non-positive duration", i)
		}
	}
	// The closing half note is the longest.
	last := CompletionMelody[len(CompletionMelody)-1]
	for i, n := range CompletionMelody[:len(CompletionMelody)-1] {
		if n.Duration >= last.Duration {
			t.Errorf("note %d (%v) not shorter than closing note (%v)", i, n.Duration, last.Duration)
		}
	}
}

func TestRepTonePitch(t *testing.T) {
	if RepTone.Frequency != 440 || RepTone.Duration != 100*time.Millisecond {
		t.Errorf("rep tone = %+v, want 440 Hz / 100ms", RepTone)
	}
}

func TestHardwareRendererIdleMenu(t *testing.T) {
	strip := &fakeStrip{}
	tone := &fakeTone{}
	r := NewHardwareRenderer(strip, tone)

	if err := r.IdleMenu([]exercise.Kind{exercise.Squats, exercise.Pushups}); err != nil {
		t.Fatalf("IdleMenu: %v", err)
	}

	for i, c := range strip.last {
		switch i {
		case 3, 4:
			if c != KindColors[exercise.Squats] {
				t.Errorf("slot %d = %+v, want squats color", i, c)
			}
		case 8, 9:
			if c != KindColors[exercise.Pushups] {
				t.Errorf("slot %d = %+v, want pushups color", i, c)
			}
		default:
			if c != Off {
				t.Errorf("slot %d = %+v, want off", i, c)
			}
		}
	}
}

func TestHardwareRendererRepProgress(t *testing.T) {
	strip := &fakeStrip{}
	tone := &fakeTone{}
	r := NewHardwareRenderer(strip, tone)

	if err := r.SessionStarted(); err != nil {
		t.Fatalf("SessionStarted: %v", err)
	}
	for rep := 1; rep <= 3; rep++ {
		if err := r.RepCompleted(exercise.Situps, rep); err != nil {
			t.Fatalf("RepCompleted(%d): %v", rep, err)
		}
	}

	// Slots 0..2 lit in the sit-up color, the rest dark.
	for i, c := range strip.last {
		if i < 3 {
			if c != KindColors[exercise.Situps] {
				t.Errorf("slot %d = %+v, want situps color", i, c)
			}
		} else if c != Off {
			t.Errorf("slot %d = %+v, want off", i, c)
		}
	}

	// Start tone plus one rep tone per rep.
	if len(tone.notes) != 4 {
		t.Fatalf("played %d notes, want 4", len(tone.notes))
	}
	for _, n := range tone.notes[1:] {
		if n != RepTone {
			t.Errorf("rep note = %+v, want %+v", n, RepTone)
		}
	}
}

func TestHardwareRendererRepOutOfRange(t *testing.T) {
	r := NewHardwareRenderer(&fakeStrip{}, &fakeTone{})
	if err := r.RepCompleted(exercise.Squats, 0); err == nil {
		t.Error("rep 0 should be rejected")
	}
	if err := r.RepCompleted(exercise.Squats, IndicatorCount+1); err == nil {
		t.Error("rep beyond the strip should be rejected")
	}
}

func TestHardwareRendererRoutineCompleted(t *testing.T) {
	strip := &fakeStrip{}
	tone := &fakeTone{}
	r := NewHardwareRenderer(strip, tone)

	if err := r.RoutineCompleted(exercise.JumpingJacks); err != nil {
		t.Fatalf("RoutineCompleted: %v", err)
	}

	for i, c := range strip.last {
		if c != KindColors[exercise.JumpingJacks] {
			t.Errorf("slot %d = %+v, want full fill", i, c)
		}
	}
	if len(tone.notes) != len(CompletionMelody) {
		t.Fatalf("played %d notes, want %d", len(tone.notes), len(CompletionMelody))
	}
	for i, n := range tone.notes {
		if n != CompletionMelody[i] {
			t.Errorf("note %d = %+v, want %+v", i, n, CompletionMelody[i])
		}
	}
}
