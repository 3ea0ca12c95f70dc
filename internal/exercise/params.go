// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package exercise

import "time"

// Params holds the per-exercise sampling cadences and the jumping-jack
// acceleration threshold. The sampling interval doubles as the debounce
// unit: only one sample is read per tick, so noise inside one interval
// never reaches a detector.
type Params struct {
	SitupInterval  time.Duration
	PushupInterval time.Duration
	SquatInterval  time.Duration
	JumpInterval   time.Duration

	// JumpThreshold is the x-axis acceleration (m/s²) at or below which a
	// tick registers as a jump.
	JumpThreshold float64
}

// DefaultParams returns the stock tuning for a collar-mounted device.
func DefaultParams() Params {
	return Params{
		SitupInterval:  100 * time.Millisecond,
		PushupInterval: 100 * time.Millisecond,
		SquatInterval:  250 * time.Millisecond,
		JumpInterval:   150 * time.Millisecond,
		JumpThreshold:  -15,
	}
}
