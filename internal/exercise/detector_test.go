// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package exercise

import (
	"testing"
	"time"

	"github.com/relabs-tech/exercise_tracker/internal/motion"
)

// feed runs samples through a detector and returns the tick indexes that
// completed a repetition.
func feed(det Detector, samples []motion.Sample) []int {
	var completed []int
	for i, s := range samples {
		if det.Observe(s) {
			completed = append(completed, i)
		}
	}
	return completed
}

func TestSitupDetectorCountsOnReturnToDown(t *testing.T) {
	det := NewSitupDetector(DefaultParams())

	// down → up → down: exactly one rep, on the second down transition.
	reps := feed(det, []motion.Sample{
		{X: 5, Y: 1}, // down (reference, no count)
		{X: 1, Y: 5}, // up
		{X: 5, Y: 1}, // back down: rep
	})

	if len(reps) != 1 || reps[0] != 2 {
		t.Fatalf("expected one rep on sample 2, got %v", reps)
	}
}

func TestSitupDetectorIgnoresPartialMovement(t *testing.T) {
	det := NewSitupDetector(DefaultParams())

	// Never reaching the up phase must never count.
	reps := feed(det, []motion.Sample{
		{X: 5, Y: 1},
		{X: 5, Y: 1},
		{X: 6, Y: 2},
		{X: 5, Y: 1},
	})
	if len(reps) != 0 {
		t.Fatalf("expected no reps for down-only samples, got %v", reps)
	}
}

func TestSitupDetectorIdempotentSamples(t *testing.T) {
	det := NewSitupDetector(DefaultParams())

	if det.Observe(motion.Sample{X: 1, Y: 5}) {
		t.Fatal("entering up phase must not count")
	}
	if !det.Observe(motion.Sample{X: 5, Y: 1}) {
		t.Fatal("returning down must count")
	}
	// Re-feeding the identical sample causes no phase change.
	for i := 0; i < 5; i++ {
		if det.Observe(motion.Sample{X: 5, Y: 1}) {
			t.Fatalf("repeat sample %d must not count", i)
		}
	}
}

func TestSitupDetectorHoldsPhaseOnTie(t *testing.T) {
	det := NewSitupDetector(DefaultParams())

	det.Observe(motion.Sample{X: 1, Y: 5}) // up
	if det.Observe(motion.Sample{X: 3, Y: 3}) {
		t.Fatal("tie must not count")
	}
	// Still in up phase: the next down transition counts.
	if !det.Observe(motion.Sample{X: 5, Y: 1}) {
		t.Fatal("down after tie must count")
	}
}

func TestPushupDetectorCountsOnPushUp(t *testing.T) {
	det := NewPushupDetector(DefaultParams())

	reps := feed(det, []motion.Sample{
		{Z: 5, X: 1}, // up (reference)
		{Z: 1, X: 5}, // down
		{Z: 5, X: 1}, // back up: rep
		{Z: 5, X: 1}, // no change
		{Z: 1, X: 5}, // down
		{Z: 5, X: 1}, // rep
	})

	if len(reps) != 2 || reps[0] != 2 || reps[1] != 5 {
		t.Fatalf("expected reps on samples 2 and 5, got %v", reps)
	}
}

func TestSquatDetectorFullRoutine(t *testing.T) {
	det := NewSquatDetector(DefaultParams())
	tracker := NewTracker()

	up := motion.Sample{Z: 9.8, Y: 2}
	down := motion.Sample{Z: 2, Y: 9.8}

	completions := 0
	for cycle := 0; cycle < 10; cycle++ {
		if det.Observe(down) {
			t.Fatalf("cycle %d: squat down must not count", cycle)
		}
		if !det.Observe(up) {
			t.Fatalf("cycle %d: standing up must count", cycle)
		}
		if _, finished := tracker.CompleteRep(Squats); finished {
			completions++
		}
	}

	if got := tracker.Reps(Squats); got != RoutineLength {
		t.Errorf("expected %d reps, got %d", RoutineLength, got)
	}
	if !tracker.Finished(Squats) {
		t.Error("squats should be finished after 10 cycles")
	}
	if completions != 1 {
		t.Errorf("completion must fire exactly once, got %d", completions)
	}
}

func TestJumpingJackCounterParity(t *testing.T) {
	// The classification jump is already observed, so the counter
	// starts at 1 and reps land on even jumps.
	det := NewJumpingJackDetector(DefaultParams(), 1)

	jump := motion.Sample{X: -20}
	reps := feed(det, []motion.Sample{jump, jump, jump, jump})

	// Jumps 2 and 4 complete reps (ticks 0 and 2).
	if len(reps) != 2 || reps[0] != 0 || reps[1] != 2 {
		t.Fatalf("expected reps on ticks 0 and 2, got %v", reps)
	}
}

func TestJumpingJackThresholdBoundary(t *testing.T) {
	det := NewJumpingJackDetector(DefaultParams(), 1)

	if det.Observe(motion.Sample{X: -14.9}) {
		t.Fatal("above threshold must not register a jump")
	}
	// Exactly at the threshold qualifies.
	if !det.Observe(motion.Sample{X: -15}) {
		t.Fatal("threshold jump should complete the second-jump rep")
	}
}

func TestDetectorIntervals(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		det  Detector
		want time.Duration
	}{
		{NewSitupDetector(p), 100 * time.Millisecond},
		{NewPushupDetector(p), 100 * time.Millisecond},
		{NewSquatDetector(p), 250 * time.Millisecond},
		{NewJumpingJackDetector(p, 1), 150 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := tt.det.Interval(); got != tt.want {
			t.Errorf("%s interval = %v, want %v", tt.det.Kind(), got, tt.want)
		}
	}
}

// Counting is monotonic and bounded regardless of the sample stream.
func TestTrackerBoundsUnderNoisyStream(t *testing.T) {
	det := NewSquatDetector(DefaultParams())
	tracker := NewTracker()

	samples := []motion.Sample{
		{Z: 9.8, Y: 2}, {Z: 2, Y: 9.8}, {Z: 5, Y: 5}, {Z: 9.8, Y: 2},
		{Z: 2, Y: 9.8}, {Z: 2, Y: 9.8}, {Z: 9.8, Y: 2}, {Z: 9.8, Y: 2},
	}

	prev := 0
	for i := 0; i < 40; i++ {
		if det.Observe(samples[i%len(samples)]) {
			tracker.CompleteRep(Squats)
		}
		got := tracker.Reps(Squats)
		if got < prev {
			t.Fatalf("rep count decreased: %d -> %d", prev, got)
		}
		if got < 0 || got > RoutineLength {
			t.Fatalf("rep count out of bounds: %d", got)
		}
		prev = got
	}
}
