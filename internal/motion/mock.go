// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package motion

import (
	"math"
	"time"
)

// Segment boundaries of the simulated workout, in seconds since start.
const (
	mockSquatsEnd  = 35
	mockJumpsEnd   = 75
	mockSitupsEnd  = 110
	mockPushupsEnd = 145
)

type workoutSource struct {
	start time.Time
}

// NewWorkoutSource returns a mock sampler that acts out a full workout on
// the wall clock: squats, then jumping jacks, then sit-ups, then push-ups.
// Useful for running the whole tracker pipeline at a desk.
func NewWorkoutSource() Sampler {
	return &workoutSource{start: time.Now()}
}

func (m *workoutSource) Next() (Sample, error) {
	elapsed := time.Since(m.start).Seconds()

	switch {
	case elapsed < mockSquatsEnd:
		// Upright stance, z and y swapping every second.
		if math.Mod(elapsed, 2) < 1 {
			return Sample{X: 1, Y: 2, Z: 9.8}, nil
		}
		return Sample{X: 1, Y: 9.8, Z: 2}, nil

	case elapsed < mockJumpsEnd:
		// Upright with a short hard-negative x spike every 1.5 s.
		if math.Mod(elapsed, 1.5) < 0.2 {
			return Sample{X: -20, Y: 2, Z: 9.8}, nil
		}
		return Sample{X: 1, Y: 2, Z: 9.8}, nil

	case elapsed < mockSitupsEnd:
		// Lying back (z > x > y), x and y swapping every second.
		if math.Mod(elapsed, 2) < 1 {
			return Sample{X: 5, Y: 1, Z: 9}, nil
		}
		return Sample{X: 1, Y: 5, Z: 9}, nil

	case elapsed < mockPushupsEnd:
		// Face down (y > z > x), z and x swapping every second.
		if math.Mod(elapsed, 2) < 1 {
			return Sample{X: 1, Y: 9.8, Z: 5}, nil
		}
		return Sample{X: 5, Y: 9.8, Z: 1}, nil
	}

	// Workout over: stand still.
	return Sample{X: 1, Y: 2, Z: 9.8}, nil
}
