// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"github.com/relabs-tech/exercise_tracker/internal/feedback"
	"github.com/relabs-tech/exercise_tracker/internal/motion"
	"github.com/relabs-tech/exercise_tracker/internal/session"
)

// Each wrapper must satisfy the contract the session pipeline consumes it
// through. Checked at compile time so API drift in the device wrappers
// fails the package test build.
var (
	_ motion.Sampler  = (*accelSource)(nil)
	_ motion.Sampler  = (*serialSource)(nil)
	_ session.Trigger = (*Buttons)(nil)
	_ feedback.Tone   = (*Buzzer)(nil)
	_ feedback.Strip  = (*LEDStrip)(nil)
)
