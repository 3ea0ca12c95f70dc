// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package exercise

import (
	"github.com/relabs-tech/exercise_tracker/internal/motion"
)

// Stance is the outcome of a single-sample orientation check against the
// collar-mounted axis ordering.
type Stance int

const (
	// StanceUnknown means no ordering matched; the caller should sample again.
	StanceUnknown Stance = iota
	// StanceUpright is ambiguous between jumping jacks and squats and must
	// be resolved by watching the motion itself.
	StanceUpright
	// StanceFaceDown maps to push-ups.
	StanceFaceDown
	// StanceLyingBack maps to sit-ups.
	StanceLyingBack
)

func (s Stance) String() string {
	switch s {
	case StanceUpright:
		return "upright"
	case StanceFaceDown:
		return "face_down"
	case StanceLyingBack:
		return "lying_back"
	}
	return "unknown"
}

// ClassifyStance decides the wearer's stance from one acceleration sample.
// All comparisons are strict; any tie falls through to StanceUnknown.
func ClassifyStance(s motion.Sample) Stance {
	switch {
	case s.X < s.Y && s.Y < s.Z:
		return StanceUpright
	case s.Y > s.Z && s.Z > s.X:
		return StanceFaceDown
	case s.Z > s.X && s.X > s.Y:
		return StanceLyingBack
	}
	return StanceUnknown
}
