// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package motion

// Sample is a single calibrated acceleration reading along the three
// board-fixed axes, in m/s². The device is mounted front-of-collar, so
// the axis ordering encodes the wearer's stance.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sampler yields the latest acceleration reading on demand.
// Implementations: SPI accelerometer, serial bench rig, mocks.
type Sampler interface {
	Next() (Sample, error)
}
