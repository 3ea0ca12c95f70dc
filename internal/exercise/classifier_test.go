// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package exercise

import (
	"testing"

	"github.com/relabs-tech/exercise_tracker/internal/motion"
)

func TestClassifyStance(t *testing.T) {
	tests := []struct {
		name   string
		sample motion.Sample
		want   Stance
	}{
		{"upright", motion.Sample{X: 1, Y: 2, Z: 9.8}, StanceUpright},
		{"face down", motion.Sample{X: 1, Y: 9.8, Z: 5}, StanceFaceDown},
		{"lying back", motion.Sample{X: 5, Y: 1, Z: 9}, StanceLyingBack},
		{"all equal", motion.Sample{X: 3, Y: 3, Z: 3}, StanceUnknown},
		{"x equals y upright-ish", motion.Sample{X: 2, Y: 2, Z: 9.8}, StanceUnknown},
		{"y equals z", motion.Sample{X: 1, Y: 5, Z: 5}, StanceUnknown},
		{"descending order", motion.Sample{X: 9.8, Y: 5, Z: 1}, StanceUnknown},
		{"negative upright", motion.Sample{X: -5, Y: 0, Z: 9.8}, StanceUpright},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStance(tt.sample)
			if got != tt.want {
				t.Errorf("ClassifyStance(%+v) = %s, want %s", tt.sample, got, tt.want)
			}
		})
	}
}

// Upright must always route to disambiguation, never directly to sit-ups
// or push-ups, for any strictly increasing axis triple.
func TestUprightNeverResolvesDirectly(t *testing.T) {
	samples := []motion.Sample{
		{X: -20, Y: 2, Z: 9.8}, // mid-jump
		{X: 0, Y: 1, Z: 2},
		{X: -1, Y: 0, Z: 1},
	}
	for _, s := range samples {
		if got := ClassifyStance(s); got != StanceUpright {
			t.Errorf("ClassifyStance(%+v) = %s, want %s", s, got, StanceUpright)
		}
	}
}
