// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package exercise implements the motion classification and repetition
// counting core: which exercise the wearer is doing, and when a full
// repetition has happened.
package exercise

// Kind identifies one of the four supported exercises.
type Kind int

const (
	JumpingJacks Kind = iota
	Squats
	Situps
	Pushups
)

// Kinds lists all exercise kinds in display order.
var Kinds = [...]Kind{JumpingJacks, Squats, Situps, Pushups}

func (k Kind) String() string {
	switch k {
	case JumpingJacks:
		return "jumping_jacks"
	case Squats:
		return "squats"
	case Situps:
		return "situps"
	case Pushups:
		return "pushups"
	}
	return "unknown"
}
